package seed

import (
	"errors"
	"time"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func campaignsData() []models.PointsCampaign {
	now := time.Now().UTC()
	stablecoinEnd := now.Add(-60 * 24 * time.Hour)
	mainPoolEnd := now.Add(30 * 24 * time.Hour)
	return []models.PointsCampaign{
		{
			Name:        "HyperSwap HaHype/wHype Pool",
			PartnerSlug: "hyperswap",
			StartDate:   now.Add(-30 * 24 * time.Hour),
			EndDate:     &mainPoolEnd,
			Tags:        tagsJSON("hyperswap", "liquidity_pool", "season_1", "pool:0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c"),
			Multiplier:  2.0,
		},
		{
			Name:        "HyperSwap Stablecoin Pool",
			PartnerSlug: "hyperswap",
			StartDate:   now.Add(-90 * 24 * time.Hour),
			EndDate:     &stablecoinEnd,
			Tags:        tagsJSON("hyperswap", "stablecoin", "season_1", "launch", "pool:hyperswap_hahype_usdt"),
			Multiplier:  1.5,
		},
		{
			Name:        "Pendle Yield Trading Program",
			PartnerSlug: "pendle",
			StartDate:   now.Add(-180 * 24 * time.Hour),
			EndDate:     nil, // perpetual
			Tags:        tagsJSON("pendle", "yield", "season_1", "defi", "loyalty"),
			Multiplier:  1.0,
		},
	}
}

// CreatePointsCampaigns inserts campaign records keyed by (name, partner slug).
func CreatePointsCampaigns() error {
	logger.Info("Seeding point campaigns...")

	var toCreate []models.PointsCampaign
	for _, data := range campaignsData() {
		var existing models.PointsCampaign
		err := dbconfig.DB.Where("name = ? AND partner_slug = ?", data.Name, data.PartnerSlug).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All point campaigns already exist. No new records inserted.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new point campaign(s).", len(toCreate))
	return nil
}

// DeletePointsCampaigns deletes all point campaign records.
func DeletePointsCampaigns() error {
	logger.Info("Deleting all point campaigns...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsCampaign{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d point campaign(s).", result.RowsAffected)
	return nil
}
