package main

import (
	"log"
	"net/http"
	"os"

	"clocktower-lite/apps/server/internal/archive"
	"clocktower-lite/apps/server/internal/auth"
	"clocktower-lite/apps/server/internal/gateway"
)

func main() {
	authService, authMode, err := auth.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Server] Failed to init auth service: %v", err)
	}
	defer authService.Close()

	archiveService, archiveMode, err := archive.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("[Server] Failed to init archive service: %v", err)
	}
	defer archiveService.Close()

	gw := gateway.New(authService, archiveService)
	authHTTP := auth.NewHTTPHandler(authService)
	archiveHTTP := archive.NewHTTPHandler(authService, archiveService)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	authHTTP.RegisterRoutes(mux)
	archiveHTTP.RegisterRoutes(mux)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("[Server] Auth mode: %s", authMode)
	log.Printf("[Server] Archive mode: %s", archiveMode)
	log.Printf("[Server] Starting WebSocket server on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}
