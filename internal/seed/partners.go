package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var partnersData = []models.Partner{
	{
		Name:        "HyperSwap",
		Slug:        "hyperswap",
		Website:     "https://hyperswap.exchange/",
		Description: "The HyperEVM Native Dex",
		Tags:        tagsJSON("dex", "native"),
	},
	{
		Name:        "Pendle Finance",
		Slug:        "pendle",
		Website:     "https://www.pendle.finance/",
		Description: "Tokenizing and trading future yield.",
		Tags:        tagsJSON("yield", "defi"),
	},
	{
		Name:        "Harmonix Finance",
		Slug:        "harmonix",
		Website:     "https://harmonix.fi/",
		Description: "Reshaping Yield Optimization.",
		Tags:        tagsJSON("vault", "defi"),
	},
}

// CreatePartners inserts partner records, skipping slugs that already exist.
func CreatePartners() error {
	logger.Info("Seeding partners...")

	var toCreate []models.Partner
	for _, data := range partnersData {
		var existing models.Partner
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
		logger.Info("All partners already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new partner(s).", len(toCreate))
	return nil
}

// DeletePartners deletes all partner records.
func DeletePartners() error {
	logger.Info("Deleting all partners...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.Partner{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d partner(s).", result.RowsAffected)
	return nil
}
