// seed crea el primer usuario Admin, o promueve a Admin un usuario existente.
//
// Uso: go run ./cmd/seed -email admin@example.com -password secret123 [-name Admin]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/stock-api/internal/application/auth"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/usecase"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-api/pkg/config"
	"github.com/jhoicas/stock-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "password, at least 8 characters (required for a new user)")
	name := flag.String("name", "Admin", "display name")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name+"-seed")
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		log.Fatal().Err(err).Msg("lookup user")
	}

	if existing != nil {
		out, err := usecase.NewUserUseCase(userRepo).AssignRole(ctx, existing.ID, entity.RoleAdmin)
		if err != nil {
			log.Fatal().Err(err).Msg("promote user")
		}
		log.Info().Int64("user_id", out.ID).Str("email", out.Email).Msg("user promoted to Admin")
		return
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
	out, err := authUC.CreateUserWithRole(ctx, dto.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	}, entity.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}
	log.Info().Int64("user_id", out.ID).Str("email", out.Email).Msg("admin created")
}
