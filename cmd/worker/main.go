package main

import (
	"encoding/json"
	"log"

	logrus "github.com/sirupsen/logrus"

	"pointscontrol/internal/ingest"
	"pointscontrol/pkg/config"
)

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	// Create consumer for the LP event queue
	msgConsumer, err := config.NewConsumer(ingest.LPEventQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("LP Event Worker started, waiting for messages...")

	// Start consuming messages
	err = msgConsumer.Consume(func(msg []byte) error {
		var eventMsg ingest.LPEventMessage
		if err := json.Unmarshal(msg, &eventMsg); err != nil {
			logrus.Errorf("Failed to unmarshal message: %v", err)
			return err
		}

		return ingest.HandleLPEvent(config.DB, eventMsg)
	})

	if err != nil {
		log.Fatal("Failed to start consumer: ", err)
	}
}
