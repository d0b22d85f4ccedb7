// Package ingest turns LP event messages from the ingestion pipeline into
// partner_uniswapv3_events rows. Collection of on-chain data happens
// upstream; this package only validates and persists what arrives.
package ingest

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pointscontrol/internal/models"
)

// LPEventQueue is the queue the ingestion pipeline publishes LP events to
// and the worker consumes from.
const LPEventQueue = "uniswapv3_lp_events"

// LPEventMessage is the wire format of a single LP event on the queue.
// Amounts arrive as decimal strings since they exceed int64 range.
type LPEventMessage struct {
	EventType       string `json:"event_type"`
	TxHash          string `json:"tx_hash"`
	BlockNumber     uint64 `json:"block_number"`
	PoolSlug        string `json:"pool_slug"`
	NftID           string `json:"nft_id"`
	WalletAddress   string `json:"wallet_address"`
	LiquidityChange string `json:"liquidity_change"`
	Amount0Change   string `json:"amount0_change"`
	Amount1Change   string `json:"amount1_change"`
}

// HandleLPEvent validates the message and inserts the event. A message whose
// tx_hash already exists is acknowledged as a duplicate, not an error, so
// redelivered messages don't wedge the queue.
func HandleLPEvent(db *gorm.DB, msg LPEventMessage) error {
	eventType := models.EventType(msg.EventType)
	if eventType != models.EventTypeIncreaseLiquidity && eventType != models.EventTypeDecreaseLiquidity {
		return fmt.Errorf("unknown event type: %q", msg.EventType)
	}
	if msg.TxHash == "" || msg.PoolSlug == "" || msg.WalletAddress == "" {
		return errors.New("tx_hash, pool_slug and wallet_address are required")
	}

	liquidity, err := decimal.NewFromString(msg.LiquidityChange)
	if err != nil {
		return fmt.Errorf("parse liquidity_change: %w", err)
	}
	amount0, err := decimal.NewFromString(msg.Amount0Change)
	if err != nil {
		return fmt.Errorf("parse amount0_change: %w", err)
	}
	amount1, err := decimal.NewFromString(msg.Amount1Change)
	if err != nil {
		return fmt.Errorf("parse amount1_change: %w", err)
	}

	var existing models.PartnerUniswapV3Event
	err = db.Where("tx_hash = ?", msg.TxHash).First(&existing).Error
	if err == nil {
		logrus.WithField("tx_hash", msg.TxHash).Info("Event already recorded, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check existing event: %w", err)
	}

	event := models.PartnerUniswapV3Event{
		EventType:       eventType,
		TxHash:          msg.TxHash,
		BlockNumber:     msg.BlockNumber,
		PoolSlug:        msg.PoolSlug,
		NftID:           msg.NftID,
		WalletAddress:   msg.WalletAddress,
		LiquidityChange: liquidity,
		Amount0Change:   amount0,
		Amount1Change:   amount1,
	}
	if err := db.Create(&event).Error; err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"tx_hash":      event.TxHash,
		"event_type":   event.EventType,
		"pool_slug":    event.PoolSlug,
		"wallet":       event.WalletAddress,
		"block_number": event.BlockNumber,
	}).Info("LP event recorded")

	return nil
}
