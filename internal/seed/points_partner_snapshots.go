package seed

import (
	"errors"
	"time"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// snapshotAnchor fixes the hour boundary the snapshot fixtures hang off, so
// every call in one process seeds the same rows even across an hour rollover.
var snapshotAnchor = time.Now().UTC().Truncate(time.Hour)

// CreatePointsPartnerSnapshots inserts cumulative partner point snapshots for
// two vaults, anchored to the hour boundary captured at startup.
func CreatePointsPartnerSnapshots() error {
	logger.Info("Seeding points partner snapshots...")

	now := snapshotAnchor

	snapshotsData := []models.PointsPartnerSnapshot{
		{
			VaultAddress: "0xVAULT_ALPHA",
			PartnerSlug:  "pendle",
			PointsTotal:  decimal.RequireFromString("10000.00"),
			SnapshotAt:   now.Add(-2 * time.Hour),
		},
		{
			// One hour later the cumulative total grew by 5000.
			VaultAddress: "0xVAULT_ALPHA",
			PartnerSlug:  "pendle",
			PointsTotal:  decimal.RequireFromString("15000.00"),
			SnapshotAt:   now.Add(-time.Hour),
		},
		{
			VaultAddress: "0xVAULT_BETA",
			PartnerSlug:  "hyperswap",
			PointsTotal:  decimal.RequireFromString("88000.50"),
			SnapshotAt:   now.Add(-time.Hour),
		},
	}

	var toCreate []models.PointsPartnerSnapshot
	for _, data := range snapshotsData {
		var existing models.PointsPartnerSnapshot
		err := dbconfig.DB.Where("vault_address = ? AND partner_slug = ? AND snapshot_at = ?",
			data.VaultAddress, data.PartnerSlug, data.SnapshotAt).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All points partner snapshots already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new points partner snapshot(s).", len(toCreate))
	return nil
}

// DeletePointsPartnerSnapshots deletes all points partner snapshot records.
func DeletePointsPartnerSnapshots() error {
	logger.Info("Deleting all points partner snapshots...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsPartnerSnapshot{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d points partner snapshot(s).", result.RowsAffected)
	return nil
}
