package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pointscontrol/internal/handlers"
	"pointscontrol/internal/models"
	"pointscontrol/internal/routes"
	dbconfig "pointscontrol/pkg/config"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbconfig.AutoMigrateModels(db))
	dbconfig.DB = db

	return routes.SetupRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestPartnerAPI(t *testing.T) {
	r := setupRouter(t)
	var partnerID uint

	t.Run("Create Partner", func(t *testing.T) {
		request := map[string]interface{}{
			"name":        "HyperSwap",
			"slug":        "hyperswap",
			"website":     "https://hyperswap.exchange/",
			"description": "The HyperEVM Native Dex",
			"tags":        []string{"dex", "native"},
		}
		w := doRequest(t, r, http.MethodPost, "/partners", request)
		assert.Equal(t, http.StatusCreated, w.Code)

		var partner models.Partner
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partner))
		assert.NotZero(t, partner.ID)
		assert.Equal(t, "hyperswap", partner.Slug)
		partnerID = partner.ID
	})

	t.Run("List Partners", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/partners", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var partners []models.Partner
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partners))
		assert.Len(t, partners, 1)
	})

	t.Run("Get Partner", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/partners/%d", partnerID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var partner models.Partner
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partner))
		assert.Equal(t, "HyperSwap", partner.Name)
	})

	t.Run("Update Partner", func(t *testing.T) {
		request := map[string]interface{}{
			"name": "HyperSwap DEX",
			"slug": "hyperswap",
		}
		w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/partners/%d", partnerID), request)
		assert.Equal(t, http.StatusOK, w.Code)

		var partner models.Partner
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partner))
		assert.Equal(t, "HyperSwap DEX", partner.Name)
	})

	t.Run("Get Missing Partner", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/partners/99999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete Partner", func(t *testing.T) {
		w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/partners/%d", partnerID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/partners/%d", partnerID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSeasonPointsAPI(t *testing.T) {
	r := setupRouter(t)

	now := time.Now().UTC()
	seasonCampaign := models.PointsCampaign{
		Name:        "HyperSwap HaHype/wHype Pool",
		PartnerSlug: "hyperswap",
		Multiplier:  2.0,
		StartDate:   now.Add(-30 * 24 * time.Hour),
		Tags:        []byte(`["hyperswap", "season_1"]`),
	}
	require.NoError(t, dbconfig.DB.Create(&seasonCampaign).Error)

	otherCampaign := models.PointsCampaign{
		Name:        "Pendle Season Two Preview",
		PartnerSlug: "pendle",
		Multiplier:  1.0,
		StartDate:   now,
		Tags:        []byte(`["pendle", "season_2"]`),
	}
	require.NoError(t, dbconfig.DB.Create(&otherCampaign).Error)

	rows := []models.PointsUserCampaignPoints{
		{
			WalletAddress: "0xA11ce00000000000000000000000000000000001",
			CampaignID:    seasonCampaign.ID,
			PointTypeSlug: "hyperswap-points",
			PointsEarned:  decimal.RequireFromString("1500.00"),
		},
		{
			WalletAddress: "0xB0b0000000000000000000000000000000000002",
			CampaignID:    seasonCampaign.ID,
			PointTypeSlug: "hyperswap-points",
			PointsEarned:  decimal.RequireFromString("3500.50"),
		},
		{
			WalletAddress: "0xB0b0000000000000000000000000000000000002",
			CampaignID:    otherCampaign.ID,
			PointTypeSlug: "pendle-points",
			PointsEarned:  decimal.RequireFromString("850.25"),
		},
	}
	require.NoError(t, dbconfig.DB.Create(&rows).Error)

	t.Run("Season Total Sums Matching Campaigns Only", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/campaigns/season/season_1/points", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.SeasonPointsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "season_1", response.SeasonTag)
		assert.True(t, response.TotalPoints.Equal(decimal.RequireFromString("5000.50")),
			"got %s", response.TotalPoints)
		require.Len(t, response.Breakdown, 1)
		assert.Equal(t, seasonCampaign.ID, response.Breakdown[0].CampaignID)
		assert.Equal(t, "HyperSwap HaHype/wHype Pool", response.Breakdown[0].CampaignName)
	})

	t.Run("Unknown Season Tag Returns Zero", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/campaigns/season/season_9/points", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response handlers.SeasonPointsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.TotalPoints.IsZero())
		assert.Empty(t, response.Breakdown)
	})
}

func TestLPBalanceAtTimeAPI(t *testing.T) {
	r := setupRouter(t)

	const poolSlug = "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c"
	const wallet = "0xA11ce00000000000000000000000000000000001"

	tokens := []models.Token{
		{Address: "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c", Name: "haHYPE", Decimals: 18},
		{Address: "0x5555555555555555555555555555555555555555", Name: "WHYPE", Decimals: 18},
	}
	require.NoError(t, dbconfig.DB.Create(&tokens).Error)

	pool := models.PartnerPoolUniswapV3{
		PoolSlug:      poolSlug,
		Token0Address: tokens[0].Address,
		Token1Address: tokens[1].Address,
	}
	require.NoError(t, dbconfig.DB.Create(&pool).Error)

	depositTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withdrawTime := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	events := []models.PartnerUniswapV3Event{
		{
			EventType:       models.EventTypeIncreaseLiquidity,
			TxHash:          "0xa001",
			BlockNumber:     2000,
			PoolSlug:        poolSlug,
			NftID:           "101",
			WalletAddress:   wallet,
			LiquidityChange: decimal.RequireFromString("100000"),
			Amount0Change:   decimal.RequireFromString("3000000000000000000"),
			Amount1Change:   decimal.RequireFromString("6000000000000000000"),
			CreatedAt:       depositTime,
		},
		{
			EventType:       models.EventTypeDecreaseLiquidity,
			TxHash:          "0xa002",
			BlockNumber:     2500,
			PoolSlug:        poolSlug,
			NftID:           "101",
			WalletAddress:   wallet,
			LiquidityChange: decimal.RequireFromString("100000"),
			Amount0Change:   decimal.RequireFromString("1000000000000000000"),
			Amount1Change:   decimal.RequireFromString("2000000000000000000"),
			CreatedAt:       withdrawTime,
		},
	}
	require.NoError(t, dbconfig.DB.Create(&events).Error)

	query := func(at string) handlers.LPBalanceResponse {
		path := fmt.Sprintf("/uniswapv3-events/balance-at-time?wallet_address=%s&pool_slug=%s&at=%s",
			wallet, poolSlug, at)
		w := doRequest(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response handlers.LPBalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	t.Run("Balance After Deposit", func(t *testing.T) {
		response := query("2025-06-05T00:00:00Z")
		assert.Equal(t, "haHYPE", response.Token0Name)
		assert.Equal(t, "WHYPE", response.Token1Name)
		assert.True(t, response.BalanceToken0Raw.Equal(decimal.RequireFromString("3000000000000000000")),
			"got %s", response.BalanceToken0Raw)
		assert.True(t, response.BalanceToken0Readable.Equal(decimal.RequireFromString("3")))
		assert.True(t, response.BalanceToken1Readable.Equal(decimal.RequireFromString("6")))
	})

	t.Run("Balance After Partial Withdrawal", func(t *testing.T) {
		response := query("2025-06-15T00:00:00Z")
		assert.True(t, response.BalanceToken0Readable.Equal(decimal.RequireFromString("2")),
			"got %s", response.BalanceToken0Readable)
		assert.True(t, response.BalanceToken1Readable.Equal(decimal.RequireFromString("4")))
	})

	t.Run("Balance Before Any Event Is Zero", func(t *testing.T) {
		response := query("2025-01-01T00:00:00Z")
		assert.True(t, response.BalanceToken0Raw.IsZero())
		assert.True(t, response.BalanceToken1Raw.IsZero())
	})

	t.Run("Missing Parameters Rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/uniswapv3-events/balance-at-time?pool_slug=x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Pool Returns Not Found", func(t *testing.T) {
		path := fmt.Sprintf("/uniswapv3-events/balance-at-time?wallet_address=%s&pool_slug=unknown", wallet)
		w := doRequest(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCurrentTickAPI(t *testing.T) {
	r := setupRouter(t)

	const poolSlug = "0xfde5b0626fc80e36885e2fa9cd5ad9d7768d725c"
	ticks := []models.PartnerUniswapV3Tick{
		{PoolSlug: poolSlug, TickIdx: 10, BlockNumber: 9175192},
		{PoolSlug: poolSlug, TickIdx: 100, BlockNumber: 9181517},
		{PoolSlug: poolSlug, TickIdx: -101, BlockNumber: 9175459},
	}
	require.NoError(t, dbconfig.DB.Create(&ticks).Error)

	t.Run("Returns Tick With Highest Block Number", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet,
			"/partner-pools/uniswapv3/"+poolSlug+"/current-tick", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var tick models.PartnerUniswapV3Tick
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tick))
		assert.Equal(t, 100, tick.TickIdx)
		assert.Equal(t, uint64(9181517), tick.BlockNumber)
	})

	t.Run("Unknown Pool Returns Not Found", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet,
			"/partner-pools/uniswapv3/unknown/current-tick", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestVaultAPI(t *testing.T) {
	r := setupRouter(t)

	alphaVault := models.Vault{Name: "Alpha Vault", ContractAddress: "0xVAULT_ALPHA"}
	betaVault := models.Vault{Name: "Beta Vault", ContractAddress: "0xVAULT_BETA"}
	require.NoError(t, dbconfig.DB.Create(&alphaVault).Error)
	require.NoError(t, dbconfig.DB.Create(&betaVault).Error)

	const alice = "0xA11ce00000000000000000000000000000000001"
	const bob = "0xB0b0000000000000000000000000000000000002"

	positions := []models.VaultsUserPosition{
		{UserAddress: alice, VaultID: alphaVault.ID, TotalShares: 100},
		{UserAddress: bob, VaultID: alphaVault.ID, TotalShares: 250},
		{UserAddress: alice, VaultID: betaVault.ID, TotalShares: 50},
	}
	require.NoError(t, dbconfig.DB.Create(&positions).Error)

	baseTime := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	history := []models.VaultsUserPositionHistory{
		{
			TransactionHash: "0xv002",
			UserAddress:     alice,
			VaultID:         alphaVault.ID,
			Timestamp:       baseTime.Add(48 * time.Hour),
			TransactionType: models.PositionHistoryWithdrawal,
			SharesAmount:    50,
		},
		{
			TransactionHash: "0xv001",
			UserAddress:     alice,
			VaultID:         alphaVault.ID,
			Timestamp:       baseTime,
			TransactionType: models.PositionHistoryDeposit,
			SharesAmount:    150,
		},
		{
			TransactionHash: "0xv003",
			UserAddress:     bob,
			VaultID:         alphaVault.ID,
			Timestamp:       baseTime.Add(24 * time.Hour),
			TransactionType: models.PositionHistoryDeposit,
			SharesAmount:    250,
		},
	}
	require.NoError(t, dbconfig.DB.Create(&history).Error)

	t.Run("List Vaults", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/vaults", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var vaults []models.Vault
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vaults))
		require.Len(t, vaults, 2)
		assert.Equal(t, "Alpha Vault", vaults[0].Name)
	})

	t.Run("Positions Grouped By Vault Highest Shares First", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/vaults/user-positions", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []handlers.VaultUserPositionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 3)
		assert.Equal(t, "Alpha Vault", result[0].VaultName)
		assert.Equal(t, bob, result[0].UserAddress)
		assert.Equal(t, float64(250), result[0].TotalShares)
		assert.Equal(t, alice, result[1].UserAddress)
		assert.Equal(t, "Beta Vault", result[2].VaultName)
	})

	t.Run("Positions Filtered By User", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/vaults/user-positions?user_address="+bob, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []handlers.VaultUserPositionView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, bob, result[0].UserAddress)
	})

	t.Run("History Ordered By Vault User Time", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/vaults/user-position-history", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []handlers.VaultUserPositionHistoryView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 3)
		assert.Equal(t, "0xv001", result[0].TransactionHash)
		assert.Equal(t, "0xv002", result[1].TransactionHash)
		assert.Equal(t, "0xv003", result[2].TransactionHash)
		assert.Equal(t, "Alpha Vault", result[0].VaultName)
		assert.Equal(t, models.PositionHistoryDeposit, result[0].TransactionType)
	})

	t.Run("History Filtered By User", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/vaults/user-position-history?user_address="+alice, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []handlers.VaultUserPositionHistoryView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 2)
	})
}

func TestUserPointsAPI(t *testing.T) {
	r := setupRouter(t)

	summaries := []models.PointsUserPoint{
		{
			WalletAddress: "0xA11ce00000000000000000000000000000000001",
			PointTypeSlug: "hyperswap-points",
			Points:        decimal.RequireFromString("1500.00"),
		},
		{
			WalletAddress: "0xB0b0000000000000000000000000000000000002",
			PointTypeSlug: "hyperswap-points",
			Points:        decimal.RequireFromString("3500.50"),
		},
	}
	require.NoError(t, dbconfig.DB.Create(&summaries).Error)

	history := models.PointsUserPointHistory{
		SourceEventID: uuid.New(),
		WalletAddress: "0xA11ce00000000000000000000000000000000001",
		CampaignID:    uuid.New(),
		PointTypeSlug: "hyperswap-points",
		PointsChange:  decimal.RequireFromString("1500.00"),
	}
	require.NoError(t, dbconfig.DB.Create(&history).Error)

	t.Run("List Summaries Filtered By Wallet", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet,
			"/user-points?wallet_address=0xA11ce00000000000000000000000000000000001", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []models.PointsUserPoint
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.True(t, result[0].Points.Equal(decimal.RequireFromString("1500.00")))
	})

	t.Run("List History", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/user-points/history", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []models.PointsUserPointHistory
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "hyperswap-points", result[0].PointTypeSlug)
	})
}

func TestUniswapV3EventListAPI(t *testing.T) {
	r := setupRouter(t)

	events := []models.PartnerUniswapV3Event{
		{
			EventType:       models.EventTypeIncreaseLiquidity,
			TxHash:          "0xb001",
			BlockNumber:     3000,
			PoolSlug:        "pool-a",
			NftID:           "102",
			WalletAddress:   "0xB0b0000000000000000000000000000000000002",
			LiquidityChange: decimal.New(1, 0),
			Amount0Change:   decimal.New(1, 0),
			Amount1Change:   decimal.New(1, 0),
		},
		{
			EventType:       models.EventTypeIncreaseLiquidity,
			TxHash:          "0xa001",
			BlockNumber:     2000,
			PoolSlug:        "pool-a",
			NftID:           "101",
			WalletAddress:   "0xA11ce00000000000000000000000000000000001",
			LiquidityChange: decimal.New(1, 0),
			Amount0Change:   decimal.New(1, 0),
			Amount1Change:   decimal.New(1, 0),
		},
	}
	require.NoError(t, dbconfig.DB.Create(&events).Error)

	t.Run("List Orders By Pool Wallet Block", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/uniswapv3-events", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []models.PartnerUniswapV3Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 2)
		assert.Equal(t, "0xa001", result[0].TxHash)
		assert.Equal(t, "0xb001", result[1].TxHash)
	})

	t.Run("Get By TxHash", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/uniswapv3-events/tx/0xa001", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var event models.PartnerUniswapV3Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
		assert.Equal(t, uint64(2000), event.BlockNumber)
	})

	t.Run("Enqueue Without Message Queue Is Unavailable", func(t *testing.T) {
		request := map[string]interface{}{
			"event_type":       "INCREASE_LIQUIDITY",
			"tx_hash":          "0xc001",
			"block_number":     3500,
			"pool_slug":        "pool-a",
			"nft_id":           "103",
			"wallet_address":   "0xC0ffee0000000000000000000000000000000003",
			"liquidity_change": "1",
			"amount0_change":   "1",
			"amount1_change":   "1",
		}
		w := doRequest(t, r, http.MethodPost, "/uniswapv3-events/enqueue", request)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Wallet Filter", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet,
			"/uniswapv3-events?wallet_address=0xB0b0000000000000000000000000000000000002", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var result []models.PartnerUniswapV3Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "0xb001", result[0].TxHash)
	})
}
