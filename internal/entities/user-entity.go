package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	FullName     string
	Email        null.String
	Department   null.String
	Role         string
	CreatedAt    time.Time
}
