// migrate aplica el esquema SQL embebido.
//
// Uso: go run ./cmd/migrate [up|down|version|steps N|force V]
// Sin argumentos ejecuta "up".
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/stock-api/internal/infrastructure/migration"
	"github.com/jhoicas/stock-api/pkg/config"
	"github.com/jhoicas/stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	m, err := migration.New(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		err = withInt(func(n int) error { return m.Steps(n) })
	case "force":
		err = withInt(func(v int) error { return m.Force(v) })
	case "version":
		v, dirty, verr := m.Version()
		if verr == nil {
			fmt.Printf("version=%d dirty=%t\n", v, dirty)
		}
		err = verr
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (up|down|version|steps N|force V)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("migrations")
	}
}

func withInt(fn func(int) error) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("missing numeric argument")
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", os.Args[2], err)
	}
	return fn(n)
}
