package main

import (
	"fmt"
	"os"

	"pointscontrol/internal/seed"
	"pointscontrol/pkg/config"

	logrus "github.com/sirupsen/logrus"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <create|delete>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	if len(os.Args) != 2 {
		usage()
	}

	// Initialize database
	config.InitDB()

	switch os.Args[1] {
	case "create":
		logrus.Info("Starting database seeding process...")
		if err := seed.CreateAll(); err != nil {
			logrus.Fatal("Seeding failed: ", err)
		}
		logrus.Info("All data seeded successfully!")
	case "delete":
		logrus.Info("Deleting all development data...")
		if err := seed.DeleteAll(); err != nil {
			logrus.Fatal("Deletion failed: ", err)
		}
		logrus.Info("All data deleted successfully!")
	default:
		usage()
	}
}
