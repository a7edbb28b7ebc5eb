package types

import (
	"agora-server/db"
)

type ServerAuth struct {
	AuthToken *db.AuthToken
	User      *db.User
}
