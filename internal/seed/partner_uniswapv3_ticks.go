package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ticksPoolSlug = "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c"

var ticksData = []models.PartnerUniswapV3Tick{
	{TickIdx: 10, BlockNumber: 9175192},
	{TickIdx: 100, BlockNumber: 9181517},
	{TickIdx: -101, BlockNumber: 9175459},
}

// CreatePartnerUniswapV3Ticks inserts tick records for the seeded pool.
// Seeding is skipped entirely when the parent pool is missing.
func CreatePartnerUniswapV3Ticks() error {
	logger.Info("Seeding Uniswap v3 ticks...")

	var pool models.PartnerPool
	if err := dbconfig.DB.Where("slug = ?", ticksPoolSlug).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("Pool with slug %s not found. Skipping ticks seeding.", ticksPoolSlug)
			return nil
		}
		return err
	}

	var toCreate []models.PartnerUniswapV3Tick
	for _, data := range ticksData {
		var existing models.PartnerUniswapV3Tick
		err := dbconfig.DB.Where("pool_slug = ? AND tick_idx = ?", ticksPoolSlug, data.TickIdx).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		tick := data
		tick.PoolSlug = ticksPoolSlug
		toCreate = append(toCreate, tick)
	}

	if len(toCreate) == 0 {
		logger.Info("All ticks already exist for this pool.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new tick(s) for pool %s.", len(toCreate), ticksPoolSlug)
	return nil
}

// DeletePartnerUniswapV3Ticks deletes all tick records.
func DeletePartnerUniswapV3Ticks() error {
	logger.Info("Deleting all Uniswap v3 ticks...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PartnerUniswapV3Tick{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d tick(s).", result.RowsAffected)
	return nil
}
