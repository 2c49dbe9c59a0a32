package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers creates the default admin and the starter team accounts.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding users...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("admin user seeding failed: %v", err)
	}
	if err := seedTeamUsers(ctx, db); err != nil {
		log.Fatalf("team users seeding failed: %v", err)
	}

	log.Println("user seeding complete")
}
