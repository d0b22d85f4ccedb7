package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var tokensData = []models.Token{
	{
		Address:  "0x5555555555555555555555555555555555555555",
		Name:     "WHYPE",
		Decimals: 18,
	},
	{
		Address:  "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		Name:     "haHYPE",
		Decimals: 18,
	},
}

// CreateTokens inserts token records, skipping addresses that already exist.
func CreateTokens() error {
	logger.Info("Seeding tokens...")

	var toCreate []models.Token
	for _, data := range tokensData {
		var existing models.Token
		err := dbconfig.DB.Where("address = ?", data.Address).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All tokens already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new token(s).", len(toCreate))
	return nil
}

// DeleteTokens deletes all token records.
func DeleteTokens() error {
	logger.Info("Deleting all tokens...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.Token{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d token(s).", result.RowsAffected)
	return nil
}
