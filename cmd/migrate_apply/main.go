package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"rexagon/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	if !*apply {
		for i, stmt := range db.Migrations {
			fmt.Printf("-- migration %d --\n%s\n\n", i+1, stmt)
		}
		return
	}

	if err := db.RunMigrations(context.Background(), pool); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	fmt.Printf("applied %d migrations\n", len(db.Migrations))
}
