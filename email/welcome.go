package email

import (
	"fmt"
	"os"

	"github.com/gen2brain/beeep"
)

func SendWelcomeEmail(email string, name string) error {
	if os.Getenv("GOENV") == "production" {
		subject := "Welcome to Agora"
		htmlBody := fmt.Sprintf("<p>Hi %s,</p><p>Your Agora account is ready. Join a community and start posting.</p>", name)
		textBody := fmt.Sprintf("Hi %s,\n\nYour Agora account is ready. Join a community and start posting.", name)

		return sendEmail(email, subject, htmlBody, textBody)
	}

	if os.Getenv("GOENV") == "development" {
		// Send notification
		beeep.Notify("Welcome Email", fmt.Sprintf("Welcome email for %s (not sent in development)", email), "") // ignore error
	}

	return nil
}
