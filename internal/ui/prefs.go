package ui

import (
	"encoding/json"
	"fmt"
	"log"

	"pg360/internal/storage"
)

const prefsKey = "ui_prefs"

// TablePrefs stores per-table UI preferences.
type TablePrefs struct {
	SortKey       string   `json:"sort_key"`
	SortDesc      bool     `json:"sort_desc"`
	HiddenColumns []string `json:"hidden_columns"`
	ActiveColumn  string   `json:"active_column"`
}

// UIPreferences stores persisted app preferences.
type UIPreferences struct {
	Events     TablePrefs `json:"events"`
	Categories TablePrefs `json:"categories"`
	Places     TablePrefs `json:"places"`
}

func loadUIPreferences(kv storage.KV) UIPreferences {
	raw, ok, err := kv.Get(prefsKey)
	if err != nil {
		log.Printf("ui: loading preferences: %v", err)
		return UIPreferences{}
	}
	if !ok {
		return UIPreferences{}
	}

	var prefs UIPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		log.Printf("ui: discarding unreadable preferences: %v", err)
		return UIPreferences{}
	}
	return prefs
}

func saveUIPreferences(kv storage.KV, prefs UIPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := kv.Set(prefsKey, string(data)); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
