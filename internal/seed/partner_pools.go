package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var partnerPoolsData = []models.PartnerPool{
	{
		Name:        "Pendle Finance",
		Slug:        "pendle_hahype",
		PartnerSlug: "pendle",
		Tags:        tagsJSON("pendle", "hahype"),
	},
	{
		Name:        "HyperSwap HaHype Hype Pool",
		Slug:        "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		PartnerSlug: "hyperswap",
		Tags:        tagsJSON("hyperswap", "hype", "hahype"),
	},
	{
		Name:        "HyperSwap HaHype USDT Pool",
		Slug:        "hyperswap_hahype_usdt",
		PartnerSlug: "hyperswap",
		Tags:        tagsJSON("hyperswap", "usdt", "hahype"),
	},
}

// CreatePartnerPools inserts partner pool records, skipping existing slugs.
func CreatePartnerPools() error {
	logger.Info("Seeding partner pools...")

	var toCreate []models.PartnerPool
	for _, data := range partnerPoolsData {
		var existing models.PartnerPool
		err := dbconfig.DB.Where("slug = ?", data.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All partner pools already exist. No new records inserted.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new partner pool(s).", len(toCreate))
	return nil
}

// DeletePartnerPools deletes all partner pool records.
func DeletePartnerPools() error {
	logger.Info("Deleting all partner pool records...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PartnerPool{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d partner pool(s).", result.RowsAffected)
	return nil
}
