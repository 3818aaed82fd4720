// Package model describes the prediction model shown to users.
//
// The figures are static. No model is trained or loaded.
package model

import (
	"sort"
	"time"
)

// Info is the model card.
type Info struct {
	Name          string  `json:"name"`
	Version       string  `json:"version"`
	Architecture  string  `json:"architecture"`
	Accuracy      float64 `json:"accuracy"`      // percent
	Precision     float64 `json:"precision"`     // percent
	Recall        float64 `json:"recall"`        // percent
	F1Score       float64 `json:"f1Score"`       // percent
	TrainingGames int     `json:"trainingGames"` // games seen in training
	Latency       int     `json:"latency"`       // average latency in ms
	LastUpdated   string  `json:"lastUpdated"`   // RFC 3339
}

func DefaultInfo() Info {
	return Info{
		Name:          "ChessAI-v2.1",
		Version:       "2.1.0",
		Architecture:  "Random Forest + Positional Heuristics",
		Accuracy:      82.4,
		Precision:     84.1,
		Recall:        80.7,
		F1Score:       82.3,
		TrainingGames: 523847,
		Latency:       147,
		LastUpdated:   "2025-10-15T14:30:00Z",
	}
}

func (i Info) IsValid() bool {
	if _, err := time.Parse(time.RFC3339, i.LastUpdated); err != nil {
		return false
	}
	return i.Name != "" &&
		percent(i.Accuracy) &&
		percent(i.Precision) &&
		percent(i.Recall) &&
		percent(i.F1Score) &&
		i.TrainingGames >= 0 &&
		i.Latency >= 0
}

func percent(v float64) bool { return v >= 0 && v <= 100 }

// Feature is a named feature and its importance in percent.
type Feature struct {
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

var featureImportance = []Feature{
	{"Elo Rating Difference", 92},
	{"Material Balance", 85},
	{"Center Control", 78},
	{"Piece Mobility", 71},
	{"King Safety", 68},
	{"Pawn Structure", 62},
	{"Piece Development", 58},
	{"Castling Rights", 45},
}

// byImportance is a sortable list of features. It sorts the most important first.
type byImportance []Feature

func (l byImportance) Len() int           { return len(l) }
func (l byImportance) Less(i, j int) bool { return l[i].Importance > l[j].Importance }
func (l byImportance) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// FeatureImportance returns a fresh copy of the feature importance table, most important first.
func FeatureImportance() []Feature {
	retVal := make([]Feature, len(featureImportance))
	copy(retVal, featureImportance)
	sort.Stable(byImportance(retVal))
	return retVal
}
