// Command migrate manages the database schema: up, status and reset.
package main

import (
	"fmt"
	"log"
	"os"

	"clinic-registry/pkg/config"
	"clinic-registry/pkg/database/postgresql"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <up|status|reset>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	cfg := config.New()

	var err error
	switch os.Args[1] {
	case "up":
		err = postgresql.MigrateUp(cfg.Postgres.DSN)
	case "status":
		err = postgresql.MigrateStatus(cfg.Postgres.DSN)
	case "reset":
		err = postgresql.ResetSchema(cfg.Postgres.DSN)
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}
