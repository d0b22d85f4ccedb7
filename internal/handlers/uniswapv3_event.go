package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pointscontrol/internal/ingest"
	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// EnqueueUniswapV3Event hands an LP event message to the ingest worker via
// RabbitMQ. The API only validates and forwards; the worker owns insertion.
func EnqueueUniswapV3Event(c *gin.Context) {
	var msg ingest.LPEventMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if dbconfig.RabbitMQ == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Message queue not configured"})
		return
	}

	publisher, err := dbconfig.NewPublisher()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer publisher.Close()

	if err := publisher.Publish(ingest.LPEventQueue, msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Event enqueued"})
}

// ListUniswapV3Events returns LP events grouped by pool and wallet,
// ordered by block number within each group
func ListUniswapV3Events(c *gin.Context) {
	var events []models.PartnerUniswapV3Event
	query := dbconfig.DB.Order("pool_slug, wallet_address, block_number")
	if wallet := c.Query("wallet_address"); wallet != "" {
		query = query.Where("wallet_address = ?", wallet)
	}
	if poolSlug := c.Query("pool_slug"); poolSlug != "" {
		query = query.Where("pool_slug = ?", poolSlug)
	}
	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetUniswapV3Event returns a single LP event by transaction hash
func GetUniswapV3Event(c *gin.Context) {
	var event models.PartnerUniswapV3Event
	if err := dbconfig.DB.Where("tx_hash = ?", c.Param("tx_hash")).First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// LPBalanceResponse is a user's net token balance in a pool at a point in time
type LPBalanceResponse struct {
	WalletAddress         string          `json:"wallet_address"`
	PoolSlug              string          `json:"pool_slug"`
	AtTime                time.Time       `json:"at_time"`
	Token0Name            string          `json:"token0_name"`
	Token1Name            string          `json:"token1_name"`
	BalanceToken0Raw      decimal.Decimal `json:"balance_token0_raw"`
	BalanceToken1Raw      decimal.Decimal `json:"balance_token1_raw"`
	BalanceToken0Readable decimal.Decimal `json:"balance_token0_readable"`
	BalanceToken1Readable decimal.Decimal `json:"balance_token1_readable"`
}

// GetLPBalanceAtTime calculates the net token0/token1 balance of a wallet in
// a pool at a given time by summing increase events and subtracting decrease
// events in a single aggregation query, then adjusting for token decimals
func GetLPBalanceAtTime(c *gin.Context) {
	wallet := c.Query("wallet_address")
	poolSlug := c.Query("pool_slug")
	if wallet == "" || poolSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wallet_address and pool_slug are required"})
		return
	}

	atTime := time.Now().UTC()
	if atParam := c.Query("at"); atParam != "" {
		parsed, err := time.Parse(time.RFC3339, atParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at must be an RFC3339 timestamp"})
			return
		}
		atTime = parsed
	}

	var sums struct {
		NetAmount0Raw decimal.Decimal `gorm:"column:net_amount0_raw"`
		NetAmount1Raw decimal.Decimal `gorm:"column:net_amount1_raw"`
	}
	err := dbconfig.DB.Model(&models.PartnerUniswapV3Event{}).
		Select(
			"COALESCE(SUM(CASE WHEN event_type = ? THEN amount0_change WHEN event_type = ? THEN -amount0_change END), 0) AS net_amount0_raw, "+
				"COALESCE(SUM(CASE WHEN event_type = ? THEN amount1_change WHEN event_type = ? THEN -amount1_change END), 0) AS net_amount1_raw",
			models.EventTypeIncreaseLiquidity, models.EventTypeDecreaseLiquidity,
			models.EventTypeIncreaseLiquidity, models.EventTypeDecreaseLiquidity,
		).
		Where("wallet_address = ?", wallet).
		Where("pool_slug = ?", poolSlug).
		Where("created_at <= ?", atTime).
		Scan(&sums).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var pool models.PartnerPoolUniswapV3
	if err := dbconfig.DB.Where("pool_slug = ?", poolSlug).First(&pool).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pool metadata not found"})
		return
	}

	var token0, token1 models.Token
	if err := dbconfig.DB.Where("address = ?", pool.Token0Address).First(&token0).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Token0 metadata not found"})
		return
	}
	if err := dbconfig.DB.Where("address = ?", pool.Token1Address).First(&token1).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Token1 metadata not found"})
		return
	}

	c.JSON(http.StatusOK, LPBalanceResponse{
		WalletAddress:         wallet,
		PoolSlug:              poolSlug,
		AtTime:                atTime,
		Token0Name:            token0.Name,
		Token1Name:            token1.Name,
		BalanceToken0Raw:      sums.NetAmount0Raw,
		BalanceToken1Raw:      sums.NetAmount1Raw,
		BalanceToken0Readable: sums.NetAmount0Raw.Shift(int32(-token0.Decimals)),
		BalanceToken1Readable: sums.NetAmount1Raw.Shift(int32(-token1.Decimals)),
	})
}
