package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mahmoudaladin7/To-Do-List/config"
	"github.com/mahmoudaladin7/To-Do-List/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	// A couple of tasks so list/filter endpoints have data to show
	due := time.Now().UTC().Add(48 * time.Hour)
	seedTasks := []struct {
		title  string
		desc   string
		status string
		due    *time.Time
	}{
		{"Buy milk", "2% organic", "pending", &due},
		{"Write report", "quarterly numbers", "in_progress", nil},
		{"File taxes", "", "done", nil},
	}
	for _, t := range seedTasks {
		var desc any
		if t.desc != "" {
			desc = t.desc
		}
		if _, err := db.Exec(`
			INSERT INTO tasks (user_id, title, description, status, due_date)
			SELECT $1, $2, $3, $4, $5
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE user_id = $1 AND title = $2)
		`, id, t.title, desc, t.status, t.due); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Println("seeded demo tasks (if not already present)")
}
