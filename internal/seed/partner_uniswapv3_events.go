package seed

import (
	"errors"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"

	logger "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type uniswapV3EventData struct {
	EventType       models.EventType
	TxHash          string
	BlockNumber     uint64
	PoolSlug        string
	NftID           string
	WalletAddress   string
	LiquidityChange string
	Amount0Change   string
	Amount1Change   string
}

// Historical events for the HaHype/wHype pool scenario: Alice adds liquidity
// and later removes all of it, Bob adds liquidity and stays in the pool.
var eventsData = []uniswapV3EventData{
	{
		EventType:       models.EventTypeIncreaseLiquidity,
		TxHash:          "0xa001",
		BlockNumber:     2000,
		PoolSlug:        "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		NftID:           "101",
		WalletAddress:   "0xA11ce00000000000000000000000000000000001",
		LiquidityChange: "100000",
		Amount0Change:   "100000000000000000000", // 100 HaHype
		Amount1Change:   "200000000000000000000", // 200 wHype
	},
	{
		EventType:       models.EventTypeDecreaseLiquidity,
		TxHash:          "0xa002",
		BlockNumber:     2500,
		PoolSlug:        "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		NftID:           "101",
		WalletAddress:   "0xA11ce00000000000000000000000000000000001",
		LiquidityChange: "100000",
		Amount0Change:   "100000000000000000000",
		Amount1Change:   "200000000000000000000",
	},
	{
		EventType:       models.EventTypeIncreaseLiquidity,
		TxHash:          "0xb001",
		BlockNumber:     3000,
		PoolSlug:        "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c",
		NftID:           "102",
		WalletAddress:   "0xB0b0000000000000000000000000000000000002",
		LiquidityChange: "150000",
		Amount0Change:   "150000000000000000000", // 150 HaHype
		Amount1Change:   "300000000000000000000", // 300 wHype
	},
}

// CreatePartnerUniswapV3Events inserts historical LP events. The unique
// tx_hash is the natural key: events whose hash already exists are skipped.
func CreatePartnerUniswapV3Events() error {
	logger.Info("Seeding Uniswap v3 historical LP events...")

	var toCreate []models.PartnerUniswapV3Event
	for _, data := range eventsData {
		var existing models.PartnerUniswapV3Event
		err := dbconfig.DB.Where("tx_hash = ?", data.TxHash).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		liquidityChange, err := decimal.NewFromString(data.LiquidityChange)
		if err != nil {
			return err
		}
		amount0Change, err := decimal.NewFromString(data.Amount0Change)
		if err != nil {
			return err
		}
		amount1Change, err := decimal.NewFromString(data.Amount1Change)
		if err != nil {
			return err
		}

		toCreate = append(toCreate, models.PartnerUniswapV3Event{
			EventType:       data.EventType,
			TxHash:          data.TxHash,
			BlockNumber:     data.BlockNumber,
			PoolSlug:        data.PoolSlug,
			NftID:           data.NftID,
			WalletAddress:   data.WalletAddress,
			LiquidityChange: liquidityChange,
			Amount0Change:   amount0Change,
			Amount1Change:   amount1Change,
		})
	}

	if len(toCreate) == 0 {
		logger.Info("All specified Uniswap v3 LP events already exist.")
		return nil
	}

	if err := dbconfig.DB.Create(&toCreate).Error; err != nil {
		return err
	}
	logger.Infof("Inserted %d new Uniswap v3 LP event(s).", len(toCreate))
	return nil
}

// DeletePartnerUniswapV3Events deletes all historical LP event records.
func DeletePartnerUniswapV3Events() error {
	logger.Info("Deleting all Uniswap v3 historical LP events...")
	result := dbconfig.DB.Where("1 = 1").Delete(&models.PartnerUniswapV3Event{})
	if result.Error != nil {
		return result.Error
	}
	logger.Infof("Deleted %d Uniswap v3 LP event(s).", result.RowsAffected)
	return nil
}
