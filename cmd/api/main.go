package main

import (
	"log"

	"oldisgold-api/internal/config"
	"oldisgold-api/internal/handler"
	"oldisgold-api/internal/server"
	"oldisgold-api/internal/store"
)

func main() {
	cfg := config.Load()

	var s store.Store
	switch cfg.Store {
	case config.StoreMemory:
		log.Println("Using in-memory store; data will not survive a restart")
		s = store.NewMemory()
	default:
		sqlite, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		s = sqlite
	}
	defer s.Close()

	router := server.NewRouter(handler.New(s))

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
