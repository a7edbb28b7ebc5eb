package main

import (
	"log"
	"net/http"

	"agora-server/routes"
	"agora-server/setup"

	"github.com/gorilla/mux"
)

func main() {
	routes.RegisterHandleAgora(func(router *mux.Router, path string, handler routes.AgoraHandler) *mux.Route {
		return router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			handler(w, r)
		})
	})

	setup.MustLoadEnv()
	setup.MustInitDb()

	r := mux.NewRouter()
	setup.StartServer(r)
}
