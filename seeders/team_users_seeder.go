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

type teamUser struct {
	Username   string
	FullName   string
	Email      string
	Department string
}

var teamUsers = []teamUser{
	{"jdoe", "John Doe", "jdoe@company.com", "Solution Design"},
	{"aokafor", "Adaeze Okafor", "aokafor@company.com", "Solution Design"},
	{"tbello", "Tunde Bello", "tbello@company.com", "Presales"},
}

// seedTeamUsers creates the initial assignable team members with a shared
// starter password.
func seedTeamUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - creating team users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash team password: %w", err)
	}

	for _, u := range teamUsers {
		var existingID uint64
		err := db.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, u.Username).Scan(&existingID)
		if err == nil {
			log.Printf("    - user %q already exists, skipping", u.Username)
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check for user %q: %w", u.Username, err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO users (username, password_hash, full_name, email, department, role)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			u.Username, string(hash), u.FullName, u.Email, u.Department, constants.RoleUser,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
		}
		log.Printf("    - user %q created", u.Username)
	}

	return nil
}
