// cmd/seeder/main.go
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/pressquest/pressquest-backend/internal/db"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func buildStore() store.Store {
	if os.Getenv("STORE_BACKEND") == "postgres" {
		db.Init()
		st, err := store.NewPostgresStore(db.DB)
		if err != nil {
			log.Fatal("failed to init postgres store:", err)
		}
		return st
	}
	dir := os.Getenv("SESSION_DIR")
	if dir == "" {
		dir = ".session"
	}
	st, err := store.NewFileStore(dir)
	if err != nil {
		log.Fatal("failed to init file store:", err)
	}
	return st
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	st := buildStore()

	content, err := os.ReadFile("seed/quests.json")
	if err != nil {
		log.Fatalf("failed to read seed/quests.json: %v", err)
	}

	var quests []*model.Quest
	if err := json.Unmarshal(content, &quests); err != nil {
		log.Fatalf("failed to parse seed/quests.json: %v", err)
	}

	questRepo := repository.NewQuestRepository(st)
	for _, q := range quests {
		if existing, _ := questRepo.GetByID(q.ID); existing != nil {
			continue
		}
		if err := questRepo.Create(q); err != nil {
			log.Fatalf("failed to seed quest %s: %v", q.ID, err)
		}
		fmt.Printf("Seeded: %s (%s)\n", q.Title, q.ID)
	}

	fmt.Println("Store seeding completed successfully!")
}
