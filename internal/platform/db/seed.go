package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"worktime/internal/domain/auth"
	"worktime/internal/platform/config"
)

// Seed creates the initial admin account when the users table is empty.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	store := auth.NewStore(pool)

	total, err := store.CountUsers(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	password := cfg.SeedAdminPass
	if password == "" {
		password = "admin"
		slog.Warn("seeding admin user with default password, change it immediately")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := store.CreateUser(ctx, cfg.SeedAdminUser, "Administrator", auth.RoleAdmin, hash, 0)
	if err != nil {
		return err
	}
	slog.Info("seeded admin user", "id", id, "username", cfg.SeedAdminUser)
	return nil
}
