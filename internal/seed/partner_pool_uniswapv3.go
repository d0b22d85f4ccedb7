package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Assumes the referenced pool and tokens have been seeded already.
var uniswapV3PoolsData = []models.PartnerPoolUniswapV3{
	{
		PoolSlug:      "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		Token0Address: "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		Token1Address: "0x5555555555555555555555555555555555555555",
	},
}

// CreatePartnerPoolUniswapV3 inserts Uniswap V3 metadata for partner pools.
// Records whose parent pool or tokens are missing are skipped with a warning
// to keep referential integrity.
func CreatePartnerPoolUniswapV3() error {
	logger.Info("Seeding partner pool Uniswap V3 metadata...")

	var toCreate []models.PartnerPoolUniswapV3
	for _, data := range uniswapV3PoolsData {
		var existing models.PartnerPoolUniswapV3
		err := dbconfig.DB.Where("pool_slug = ?", data.PoolSlug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var pool models.PartnerPool
		if err := dbconfig.DB.Where("slug = ?", data.PoolSlug).First(&pool).Error; err != nil {
			logger.Warnf("PartnerPool with slug '%s' not found. Skipping metadata seeding.", data.PoolSlug)
			continue
		}

		var token0, token1 models.Token
		err0 := dbconfig.DB.Where("address = ?", data.Token0Address).First(&token0).Error
		err1 := dbconfig.DB.Where("address = ?", data.Token1Address).First(&token1).Error
		if err0 != nil || err1 != nil {
			logger.Warnf("Tokens '%s' or '%s' not found in tokens table. Skipping metadata for pool '%s'.",
				data.Token0Address, data.Token1Address, data.PoolSlug)
			continue
		}

		toCreate = append(toCreate, data)
	}

	if len(toCreate) == 0 {
		logger.Info("All Uniswap V3 pool metadata already exists.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new Uniswap V3 pool metadata record(s).", len(toCreate))
	return nil
}

// DeletePartnerPoolUniswapV3 deletes all Uniswap V3 pool metadata records.
func DeletePartnerPoolUniswapV3() error {
	logger.Info("Deleting all partner pool Uniswap V3 metadata records...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PartnerPoolUniswapV3{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d partner pool Uniswap V3 metadata record(s).", result.RowsAffected)
	return nil
}
