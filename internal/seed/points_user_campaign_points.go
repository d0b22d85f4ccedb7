package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type userCampaignPointsData struct {
	WalletAddress string
	CampaignName  string
	PointTypeSlug string
	PointsEarned  string
}

var campaignPointsData = []userCampaignPointsData{
	{
		// Alice participated in the HaHype/wHype campaign.
		WalletAddress: "0xA11ce00000000000000000000000000000000001",
		CampaignName:  "HyperSwap HaHype/wHype Pool",
		PointTypeSlug: "hyperswap-points",
		PointsEarned:  "1500.00",
	},
	{
		// Bob is also in the HaHype/wHype campaign and has earned more points.
		WalletAddress: "0xB0b0000000000000000000000000000000000002",
		CampaignName:  "HyperSwap HaHype/wHype Pool",
		PointTypeSlug: "hyperswap-points",
		PointsEarned:  "3500.50",
	},
	{
		// Bob is also participating in the ongoing Pendle program.
		WalletAddress: "0xB0b0000000000000000000000000000000000002",
		CampaignName:  "Pendle Yield Trading Program",
		PointTypeSlug: "pendle-points",
		PointsEarned:  "850.25",
	},
}

// CreateUserCampaignPoints inserts user campaign point records. Campaign IDs
// are resolved from campaign names at seed time; records whose campaign is
// missing are skipped with a warning.
func CreateUserCampaignPoints() error {
	logger.Info("Seeding user campaign points...")

	var toCreate []models.PointsUserCampaignPoints
	for _, data := range campaignPointsData {
		var campaign models.PointsCampaign
		if err := dbconfig.DB.Where("name = ?", data.CampaignName).First(&campaign).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warnf("Could not find campaign '%s'. Skipping this record.", data.CampaignName)
				continue
			}
			return err
		}

		var existing models.PointsUserCampaignPoints
		err := dbconfig.DB.Where("wallet_address = ? AND campaign_id = ?", data.WalletAddress, campaign.ID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		pointsEarned, err := decimal.NewFromString(data.PointsEarned)
		if err != nil {
			return err
		}

		toCreate = append(toCreate, models.PointsUserCampaignPoints{
			WalletAddress: data.WalletAddress,
			CampaignID:    campaign.ID,
			PointTypeSlug: data.PointTypeSlug,
			PointsEarned:  pointsEarned,
		})
	}

	if len(toCreate) == 0 {
		logger.Info("All user campaign point records already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new user campaign point record(s).", len(toCreate))
	return nil
}

// DeleteUserCampaignPoints deletes all user campaign point records.
func DeleteUserCampaignPoints() error {
	logger.Info("Deleting all user campaign points...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PointsUserCampaignPoints{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d user campaign point record(s).", result.RowsAffected)
	return nil
}
