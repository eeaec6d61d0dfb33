package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin seeds the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the variables are unset or the account
// already exists.
func EnsureAdmin(ctx context.Context, database *Database, logger *zap.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var count int
	if err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", adminEmail).Scan(&count); err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	_, err = database.Exec(ctx, `
        INSERT INTO users (id, name, email, password, access_level, role, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, uuid.New().String(), "admin", adminEmail, string(hashed), "admin", "admin", "active", now, now)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("bootstrap admin account created", zap.String("email", adminEmail))
	return nil
}
