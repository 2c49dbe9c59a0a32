package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"sales-request-system/pkg/config"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, version")
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Run(*command, db, *dir); err != nil {
		log.Fatalf("goose %s failed: %v", *command, err)
	}
}
