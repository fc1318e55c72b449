package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/faheemframes/healthyfi/internal/db"
	"github.com/faheemframes/healthyfi/internal/infra"
)

func main() {
	var (
		dsnFlag     string
		printFlag   bool
		timeoutFlag time.Duration
	)
	flag.StringVar(&dsnFlag, "dsn", "", "database URL (defaults to DATABASE_URL)")
	flag.BoolVar(&printFlag, "print", false, "print the schema instead of applying it")
	flag.DurationVar(&timeoutFlag, "timeout", 30*time.Second, "migration timeout")
	flag.Parse()

	if printFlag {
		fmt.Print(db.Schema())
		return
	}

	_ = godotenv.Load()

	dsn := strings.TrimSpace(dsnFlag)
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dsn == "" {
		exitWithError(errors.New("DATABASE_URL or -dsn is required"))
	}

	logger := infra.NewLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL")).With().Str("cmd", "migrate").Logger()

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		exitWithError(fmt.Errorf("open database: %w", err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		exitWithError(fmt.Errorf("ping database: %w", err))
	}
	if err := db.Migrate(ctx, conn); err != nil {
		exitWithError(err)
	}
	logger.Info().Int("statements", len(db.Statements())).Msg("schema applied")
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
	os.Exit(1)
}
