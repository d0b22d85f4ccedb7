package main

import (
	"errors"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// getHourBoundary truncates a time to the start of its hour
func getHourBoundary(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// RecordPartnerSnapshots carries the latest cumulative points total of each
// (vault, partner) pair forward to the current hour boundary. Pairs that
// already have a snapshot for this hour are skipped, so the job is safe to
// rerun within the same hour.
func RecordPartnerSnapshots() error {
	logger.Info("> Starting partner snapshot recording")

	hourBoundary := getHourBoundary(time.Now().UTC())

	var pairs []struct {
		VaultAddress string
		PartnerSlug  string
	}
	err := dbconfig.DB.Model(&models.PointsPartnerSnapshot{}).
		Select("vault_address, partner_slug").
		Group("vault_address, partner_slug").
		Scan(&pairs).Error
	if err != nil {
		logger.Errorf("> Failed to query snapshot pairs: %v", err)
		return err
	}

	logger.Infof("> Found %d (vault, partner) pairs", len(pairs))

	for _, pair := range pairs {
		var existing models.PointsPartnerSnapshot
		err := dbconfig.DB.
			Where("vault_address = ? AND partner_slug = ? AND snapshot_at = ?",
				pair.VaultAddress, pair.PartnerSlug, hourBoundary).
			First(&existing).Error
		if err == nil {
			logger.Debugf("> Snapshot exists for %s/%s at %s, skipping",
				pair.VaultAddress, pair.PartnerSlug, hourBoundary)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Errorf("> Failed to check existing snapshot for %s/%s: %v",
				pair.VaultAddress, pair.PartnerSlug, err)
			continue
		}

		var latest models.PointsPartnerSnapshot
		err = dbconfig.DB.
			Where("vault_address = ? AND partner_slug = ?", pair.VaultAddress, pair.PartnerSlug).
			Order("snapshot_at DESC").
			First(&latest).Error
		if err != nil {
			logger.Errorf("> Failed to load latest snapshot for %s/%s: %v",
				pair.VaultAddress, pair.PartnerSlug, err)
			continue
		}

		record := models.PointsPartnerSnapshot{
			VaultAddress: pair.VaultAddress,
			PartnerSlug:  pair.PartnerSlug,
			PointsTotal:  latest.PointsTotal,
			SnapshotAt:   hourBoundary,
		}
		if err := dbconfig.DB.Create(&record).Error; err != nil {
			logger.Errorf("> Failed to create snapshot for %s/%s: %v",
				pair.VaultAddress, pair.PartnerSlug, err)
			continue
		}
		logger.Infof("> Snapshot recorded for %s/%s at %s",
			pair.VaultAddress, pair.PartnerSlug, hourBoundary)
	}

	logger.Info("> Partner snapshot recording finished")
	return nil
}

func main() {
	// Log to a file when possible, stdout otherwise
	os.MkdirAll("logs", 0755)
	file, err := os.OpenFile("logs/partner_snapshot.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logger.SetOutput(file)
	} else {
		logger.Warn("Could not open log file, logging to stdout")
	}

	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logger.InfoLevel)
	logger.Info("> Initializing...")

	dbconfig.InitDB()
	logger.Info("> Database connection initialized")

	c := cron.New(cron.WithSeconds())

	// Run at the top of every hour
	_, err = c.AddFunc("0 0 * * * *", func() {
		if err := RecordPartnerSnapshots(); err != nil {
			logger.Errorf("> Partner snapshot recording failed: %v", err)
		}
	})
	if err != nil {
		logger.Fatalf("> Failed to register cron job: %v", err)
	}

	logger.Info("> Cron job registered, running hourly")

	c.Start()

	select {}
}
