package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestPlayerFromResponse(t *testing.T) {
	resp := &hypixelPlayerResponse{Success: true}
	resp.Player = &struct {
		UUID           string `json:"uuid"`
		FirstLogin     *int64 `json:"firstLogin"`
		NewPackageRank string `json:"newPackageRank"`
	}{
		UUID:           "u1",
		FirstLogin:     int64Ptr(1610668800000),
		NewPackageRank: "MVP_PLUS",
	}

	player, err := playerFromResponse("u1", resp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC), player.FirstLogin.UTC())
	assert.Equal(t, "MVP+", *player.Rank)
}

func TestPlayerFromResponseDegradesGracefully(t *testing.T) {
	var resp hypixelPlayerResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"player":{"uuid":"u1"}}`), &resp))

	player, err := playerFromResponse("u1", &resp)
	require.NoError(t, err)
	assert.Nil(t, player.FirstLogin)
	assert.Nil(t, player.Rank)
}

func TestPlayerFromResponseUnknownRankPassesThrough(t *testing.T) {
	var resp hypixelPlayerResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"player":{"uuid":"u1","newPackageRank":"YOUTUBER"}}`), &resp))

	player, err := playerFromResponse("u1", &resp)
	require.NoError(t, err)
	assert.Equal(t, "YOUTUBER", *player.Rank)
}

func TestPlayerFromResponseNullPlayerIsNotFound(t *testing.T) {
	var resp hypixelPlayerResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"player":null}`), &resp))

	_, err := playerFromResponse("u1", &resp)
	assert.ErrorIs(t, err, ErrNotFound)
}
