// Command migrate applies the embedded SQL migrations with goose.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// The command defaults to "up". Requires DATABASE_DSN to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/creditodds/creditodds-api/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall migration timeout")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// goose requires *sql.DB.
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose new provider: %v", err)
	}

	if err := run(ctx, provider, command); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}

func run(ctx context.Context, p *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
		}
		if len(results) == 0 {
			fmt.Println("no pending migrations")
		}
	case "down":
		r, err := p.Down(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("rolled back %s\n", r.Source.Path)
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %s\n", s.State, s.Source.Path)
		}
	case "version":
		v, err := p.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("version %d\n", v)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status|version]")
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
