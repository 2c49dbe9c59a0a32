package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"sales-request-system/pkg/constants"
)

// seedAdminUser creates the default administrator account once.
func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating default 'admin' user...")

	var existingID uint64
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE username = 'admin'`).Scan(&existingID)
	if err == nil {
		log.Println("    - admin user already exists, skipping")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO users (username, password_hash, full_name, email, department, role)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		"admin", string(hash), "Administrator", "admin@company.com", "IT", constants.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	log.Println("    - admin user created (change the default password!)")
	return nil
}
