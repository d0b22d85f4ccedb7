// Package seed populates and clears development fixture data. Every Create
// function checks for existing rows by their natural key before inserting,
// so reseeding is idempotent across sequential runs.
package seed

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// CreateAll seeds every table in dependency order.
func CreateAll() error {
	// Core data first
	if err := CreatePartners(); err != nil {
		return err
	}
	if err := CreateTokens(); err != nil {
		return err
	}
	if err := CreatePointsPointTypes(); err != nil {
		return err
	}
	if err := CreatePartnerPools(); err != nil {
		return err
	}

	// Raw ingestion ledgers
	if err := CreatePointsPartnerSnapshots(); err != nil {
		return err
	}

	// Uniswap V3 specific data
	if err := CreatePartnerPoolUniswapV3(); err != nil {
		return err
	}
	if err := CreatePartnerUniswapV3LPs(); err != nil {
		return err
	}
	if err := CreatePartnerUniswapV3Ticks(); err != nil {
		return err
	}
	if err := CreatePartnerUniswapV3Events(); err != nil {
		return err
	}

	// User and campaign data
	if err := CreatePointsCampaigns(); err != nil {
		return err
	}
	return CreateUserCampaignPoints()
}

// DeleteAll clears every seeded table, most-dependent tables first.
func DeleteAll() error {
	if err := DeleteUserPointHistory(); err != nil {
		return err
	}
	if err := DeleteUserPoints(); err != nil {
		return err
	}
	if err := DeleteUserCampaignPoints(); err != nil {
		return err
	}
	if err := DeletePointsCampaigns(); err != nil {
		return err
	}
	if err := DeletePointsPartnerSnapshots(); err != nil {
		return err
	}
	if err := DeletePointsPointTypes(); err != nil {
		return err
	}
	if err := DeletePartnerUniswapV3Events(); err != nil {
		return err
	}
	if err := DeletePartnerUniswapV3Ticks(); err != nil {
		return err
	}
	if err := DeletePartnerUniswapV3LPs(); err != nil {
		return err
	}
	if err := DeletePartnerPoolUniswapV3(); err != nil {
		return err
	}
	if err := DeletePartnerPools(); err != nil {
		return err
	}
	if err := DeleteTokens(); err != nil {
		return err
	}
	return DeletePartners()
}

func tagsJSON(tags ...string) datatypes.JSON {
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}
