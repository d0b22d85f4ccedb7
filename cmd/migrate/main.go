package main

import (
	"fmt"
	"os"
	"strconv"

	"pointscontrol/pkg/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <up|down|rollback|steps N>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	// Initialize database (creates tables via AutoMigrate)
	config.InitDB()

	switch os.Args[1] {
	case "up":
		config.ExecuteMigrations()
	case "rollback":
		config.RollbackMigration()
	case "down":
		config.RollbackAllMigrations()
	case "steps":
		if len(os.Args) != 3 {
			usage()
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			usage()
		}
		config.MigrateSteps(n)
	default:
		usage()
	}
}
