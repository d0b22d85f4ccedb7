package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Alice added and then removed all liquidity, so her current liquidity is 0.
// Bob added liquidity and is still in the pool.
var lpsData = []models.PartnerUniswapV3LP{
	{
		PoolSlug:       "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		NftID:          "101",
		WalletAddress:  "0xA11ce00000000000000000000000000000000001",
		PriceLowerTick: -100,
		PriceUpperTick: 100,
		Liquidity:      decimal.Zero,
	},
	{
		PoolSlug:       "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		NftID:          "102",
		WalletAddress:  "0xB0b0000000000000000000000000000000000002",
		PriceLowerTick: -200,
		PriceUpperTick: 200,
		Liquidity:      decimal.NewFromInt(150000),
	},
}

// CreatePartnerUniswapV3LPs inserts LP position records keyed by NFT ID.
func CreatePartnerUniswapV3LPs() error {
	logger.Info("Seeding Uniswap v3 LP positions...")

	var toCreate []models.PartnerUniswapV3LP
	for _, data := range lpsData {
		var existing models.PartnerUniswapV3LP
		err := dbconfig.DB.Where("nft_id = ?", data.NftID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All specified Uniswap v3 LP positions already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new Uniswap v3 LP position(s).", len(toCreate))
	return nil
}

// DeletePartnerUniswapV3LPs deletes all LP position records.
func DeletePartnerUniswapV3LPs() error {
	logger.Info("Deleting all Uniswap v3 LP positions...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PartnerUniswapV3LP{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d Uniswap v3 LP position(s).", result.RowsAffected)
	return nil
}
