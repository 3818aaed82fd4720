package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInfo(t *testing.T) {
	info := DefaultInfo()
	assert.True(t, info.IsValid())

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "ChessAI-v2.1",
		"version": "2.1.0",
		"architecture": "Random Forest + Positional Heuristics",
		"accuracy": 82.4,
		"precision": 84.1,
		"recall": 80.7,
		"f1Score": 82.3,
		"trainingGames": 523847,
		"latency": 147,
		"lastUpdated": "2025-10-15T14:30:00Z"
	}`, string(data))
}

func TestInfoIsValid(t *testing.T) {
	info := DefaultInfo()
	info.Recall = 120
	assert.False(t, info.IsValid())

	info = DefaultInfo()
	info.LastUpdated = "last tuesday"
	assert.False(t, info.IsValid())
}

func TestFeatureImportance(t *testing.T) {
	fs := FeatureImportance()
	require.Len(t, fs, 8)
	assert.Equal(t, Feature{"Elo Rating Difference", 92}, fs[0])
	assert.Equal(t, Feature{"Castling Rights", 45}, fs[7])
	for i := 1; i < len(fs); i++ {
		assert.True(t, fs[i-1].Importance >= fs[i].Importance)
	}

	fs[0].Importance = 0
	assert.Equal(t, 92, FeatureImportance()[0].Importance, "callers get a copy")
}
