package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var pointTypesData = []models.PointsPointType{
	{
		Slug:        "hyperswap-points",
		Name:        "HyperSwap Points",
		Description: "Points earned by providing liquidity and participating in HyperSwap pools.",
		PartnerSlug: "hyperswap",
	},
	{
		Slug:        "pendle-points",
		Name:        "Pendle Points",
		Description: "Points earned through yield trading on Pendle Finance.",
		PartnerSlug: "pendle",
	},
	{
		Slug:        "harmonix-points",
		Name:        "Harmonix Points",
		Description: "Points earned by optimizing yield through Harmonix Finance.",
		PartnerSlug: "harmonix",
	},
}

// CreatePointsPointTypes inserts point type definitions keyed by slug.
func CreatePointsPointTypes() error {
	logger.Info("Seeding points point types...")

	var toCreate []models.PointsPointType
	for _, data := range pointTypesData {
		var existing models.PointsPointType
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
		logger.Info("All points point types already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new points point type(s).", len(toCreate))
	return nil
}

// DeletePointsPointTypes deletes all point type records.
func DeletePointsPointTypes() error {
	logger.Info("Deleting all points point types...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsPointType{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d points point type(s).", result.RowsAffected)
	return nil
}
