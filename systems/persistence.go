package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/tetrapod/wallflower/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings payload stored on disk between runs.
type SavedSettings struct {
	Scripted bool    `json:"scripted"`
	Scale    float64 `json:"scale"`
	Seed     int64   `json:"seed"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "wallflower",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved settings from disk; nil means none saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings persists the resolved settings for the next run.
func SaveSettings(settings *SavedSettings) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings copies saved values into the global config.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Scripted = saved.Scripted
	if saved.Scale > 0 {
		cfg.Debug.Scale = saved.Scale
	}
	if saved.Seed != 0 {
		cfg.Debug.Seed = saved.Seed
	}
}
