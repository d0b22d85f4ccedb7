package seed

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pointscontrol/internal/models"
	dbconfig "pointscontrol/pkg/config"
)

// setupTestDB points the package global at a fresh in-memory database
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbconfig.AutoMigrateModels(db))
	dbconfig.DB = db
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, dbconfig.DB.Model(model).Count(&count).Error)
	return count
}

func TestCreateAll(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreateAll())

	t.Run("Inserts Every Fixture Row", func(t *testing.T) {
		assert.Equal(t, int64(len(partnersData)), countRows(t, &models.Partner{}))
		assert.Equal(t, int64(len(tokensData)), countRows(t, &models.Token{}))
		assert.Equal(t, int64(len(pointTypesData)), countRows(t, &models.PointsPointType{}))
		assert.Equal(t, int64(len(partnerPoolsData)), countRows(t, &models.PartnerPool{}))
		assert.Equal(t, int64(len(uniswapV3PoolsData)), countRows(t, &models.PartnerPoolUniswapV3{}))
		assert.Equal(t, int64(len(lpsData)), countRows(t, &models.PartnerUniswapV3LP{}))
		assert.Equal(t, int64(len(ticksData)), countRows(t, &models.PartnerUniswapV3Tick{}))
		assert.Equal(t, int64(len(eventsData)), countRows(t, &models.PartnerUniswapV3Event{}))
		assert.Equal(t, int64(len(campaignsData())), countRows(t, &models.PointsCampaign{}))
		assert.Equal(t, int64(len(campaignPointsData)), countRows(t, &models.PointsUserCampaignPoints{}))
	})

	t.Run("Rerun Inserts Nothing New", func(t *testing.T) {
		before := countRows(t, &models.Partner{}) +
			countRows(t, &models.Token{}) +
			countRows(t, &models.PointsPointType{}) +
			countRows(t, &models.PartnerPool{}) +
			countRows(t, &models.PartnerPoolUniswapV3{}) +
			countRows(t, &models.PartnerUniswapV3LP{}) +
			countRows(t, &models.PartnerUniswapV3Tick{}) +
			countRows(t, &models.PartnerUniswapV3Event{}) +
			countRows(t, &models.PointsCampaign{}) +
			countRows(t, &models.PointsUserCampaignPoints{}) +
			countRows(t, &models.PointsPartnerSnapshot{})

		require.NoError(t, CreateAll())

		after := countRows(t, &models.Partner{}) +
			countRows(t, &models.Token{}) +
			countRows(t, &models.PointsPointType{}) +
			countRows(t, &models.PartnerPool{}) +
			countRows(t, &models.PartnerPoolUniswapV3{}) +
			countRows(t, &models.PartnerUniswapV3LP{}) +
			countRows(t, &models.PartnerUniswapV3Tick{}) +
			countRows(t, &models.PartnerUniswapV3Event{}) +
			countRows(t, &models.PointsCampaign{}) +
			countRows(t, &models.PointsUserCampaignPoints{}) +
			countRows(t, &models.PointsPartnerSnapshot{})

		assert.Equal(t, before, after)
	})

	t.Run("Wei Amounts Round-Trip Exactly", func(t *testing.T) {
		var event models.PartnerUniswapV3Event
		require.NoError(t, dbconfig.DB.Where("tx_hash = ?", "0xa001").First(&event).Error)

		assert.True(t, event.Amount0Change.Equal(decimal.RequireFromString("100000000000000000000")),
			"got %s", event.Amount0Change)
		assert.True(t, event.Amount1Change.Equal(decimal.RequireFromString("200000000000000000000")),
			"got %s", event.Amount1Change)
		assert.True(t, event.LiquidityChange.Equal(decimal.RequireFromString("100000")))
	})

	t.Run("Campaign Points Round-Trip Exactly", func(t *testing.T) {
		var row models.PointsUserCampaignPoints
		require.NoError(t, dbconfig.DB.
			Where("wallet_address = ? AND point_type_slug = ?",
				"0xB0b0000000000000000000000000000000000002", "hyperswap-points").
			First(&row).Error)
		assert.True(t, row.PointsEarned.Equal(decimal.RequireFromString("3500.50")),
			"got %s", row.PointsEarned)
	})
}

func TestCreatePartnerUniswapV3EventsSkipsExistingTxHash(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreatePartnerUniswapV3Events())
	assert.Equal(t, int64(len(eventsData)), countRows(t, &models.PartnerUniswapV3Event{}))

	// A second pass finds every tx_hash and inserts nothing
	require.NoError(t, CreatePartnerUniswapV3Events())
	assert.Equal(t, int64(len(eventsData)), countRows(t, &models.PartnerUniswapV3Event{}))
}

func TestEventTxHashUniqueIndex(t *testing.T) {
	setupTestDB(t)

	event := models.PartnerUniswapV3Event{
		EventType:       models.EventTypeIncreaseLiquidity,
		TxHash:          "0xdead",
		BlockNumber:     1,
		PoolSlug:        "pool",
		NftID:           "1",
		WalletAddress:   "0x1",
		LiquidityChange: decimal.New(1, 0),
		Amount0Change:   decimal.New(1, 0),
		Amount1Change:   decimal.New(1, 0),
	}
	require.NoError(t, dbconfig.DB.Create(&event).Error)

	duplicate := event
	duplicate.ID = uuid.Nil
	assert.Error(t, dbconfig.DB.Create(&duplicate).Error)
}

func TestCreatePointsPartnerSnapshotsIsAnchored(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreatePointsPartnerSnapshots())
	first := countRows(t, &models.PointsPartnerSnapshot{})
	require.NotZero(t, first)

	// The hour anchor is captured once at startup, so repeated runs target
	// the same snapshot times and insert nothing new.
	require.NoError(t, CreatePointsPartnerSnapshots())
	assert.Equal(t, first, countRows(t, &models.PointsPartnerSnapshot{}))

	var snapshots []models.PointsPartnerSnapshot
	require.NoError(t, dbconfig.DB.Find(&snapshots).Error)
	for _, snapshot := range snapshots {
		assert.False(t, snapshot.SnapshotAt.After(snapshotAnchor))
	}
}

func TestDeleteAll(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreateAll())
	require.NoError(t, DeleteAll())

	assert.Zero(t, countRows(t, &models.Partner{}))
	assert.Zero(t, countRows(t, &models.Token{}))
	assert.Zero(t, countRows(t, &models.PointsPointType{}))
	assert.Zero(t, countRows(t, &models.PartnerPool{}))
	assert.Zero(t, countRows(t, &models.PartnerPoolUniswapV3{}))
	assert.Zero(t, countRows(t, &models.PartnerUniswapV3LP{}))
	assert.Zero(t, countRows(t, &models.PartnerUniswapV3Tick{}))
	assert.Zero(t, countRows(t, &models.PartnerUniswapV3Event{}))
	assert.Zero(t, countRows(t, &models.PointsCampaign{}))
	assert.Zero(t, countRows(t, &models.PointsUserCampaignPoints{}))
	assert.Zero(t, countRows(t, &models.PointsPartnerSnapshot{}))

	// Deleting an already empty database is fine
	require.NoError(t, DeleteAll())
}
