// cmd/tools/seed-admin/main.go
//
// Seeds the default admin account. Safe to run repeatedly; an existing
// account is left untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"giftwise/internal/common/config"
	"giftwise/internal/common/database"
	"giftwise/internal/common/errors"
	"giftwise/internal/common/logger"
	"giftwise/internal/models"
	"giftwise/internal/store"
)

func main() {
	name := flag.String("name", "Admin User", "display name for the admin account")
	email := flag.String("email", "admin@example.com", "email for the admin account")
	password := flag.String("password", "admin123", "password for the admin account")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	ctx := context.Background()
	if err := store.EnsureSchema(ctx, pg); err != nil {
		zapLog.Fatal("schema bootstrap failed", zap.Error(err))
	}
	users := store.NewUserStore(pg)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Auth.BcryptCost)
	if err != nil {
		zapLog.Fatal("password hashing failed", zap.Error(err))
	}

	user := &models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.IsCode(err, errors.ErrCodeDuplicateUser) {
			fmt.Printf("admin account %s already exists, nothing to do\n", *email)
			os.Exit(0)
		}
		zapLog.Fatal("admin creation failed", zap.Error(err))
	}

	fmt.Printf("admin account created: %s (id %s)\n", user.Email, user.ID)
}
