package setup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agora-server/db"
	"agora-server/routes"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func MustLoadEnv() {
	if os.Getenv("GOENV") == "" {
		os.Setenv("GOENV", "development")
	}

	if os.Getenv("GOENV") == "development" {
		// .env is optional in development
		if err := godotenv.Load(); err == nil {
			log.Println("loaded .env")
		}
	}
}

func MustInitDb() {
	err := db.Connect()
	if err != nil {
		log.Fatal("Error initializing database: ", err)
	}

	err = db.MigrationsUp()
	if err != nil {
		log.Fatal("Error running migrations: ", err)
	}
}

func StartServer(r *mux.Router) {
	if os.Getenv("GOENV") == "development" {
		log.Println("In development mode.")
	}

	// Get externalPort from the environment variable or default to 8080
	externalPort := os.Getenv("PORT")
	if externalPort == "" {
		externalPort = "8080"
	}

	routes.AddRoutes(r)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", externalPort),
		Handler: r,
	}

	go startServer(server)
	log.Println("Started server on port " + externalPort)

	sigTermChan := make(chan os.Signal, 1)
	signal.Notify(sigTermChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigTermChan

	log.Println("Received shutdown signal, draining in-flight requests...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server stopped")
}

func startServer(server *http.Server) {
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
