package main

import (
	"flag"
	"log"

	"sales-request-system/pkg/config"
	"sales-request-system/pkg/database/postgresql"
	"sales-request-system/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "seed the default admin and team users")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runUsers && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	log.Println("using DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}

	log.Println("seeding finished")
}
