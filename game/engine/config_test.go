package engine

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if err := ValidateGameConfig(config); err != nil {
		t.Fatalf("Default config must validate: %v", err)
	}
	if config.GridWidth != 4 || config.GridHeight != 4 {
		t.Errorf("Expected a 4x4 default board, got %dx%d", config.GridWidth, config.GridHeight)
	}
	if config.StartTiles != 2 {
		t.Errorf("Expected 2 starting tiles, got %d", config.StartTiles)
	}
	if config.FourTileChance != 0 {
		t.Errorf("Expected default spawns to always be 2, got four chance %v", config.FourTileChance)
	}
	if config.WinTile != 2048 {
		t.Errorf("Expected win tile 2048, got %d", config.WinTile)
	}
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr bool
	}{
		{"valid default", func(c *GameConfig) {}, false},
		{"missing name", func(c *GameConfig) { c.Name = "" }, true},
		{"missing description", func(c *GameConfig) { c.Description = "" }, true},
		{"grid too small", func(c *GameConfig) { c.GridWidth = 1 }, true},
		{"grid too large", func(c *GameConfig) { c.GridHeight = 17 }, true},
		{"rectangular grid", func(c *GameConfig) { c.GridWidth = 3; c.GridHeight = 5 }, false},
		{"zero start tiles", func(c *GameConfig) { c.StartTiles = 0 }, true},
		{"start tiles exceed cells", func(c *GameConfig) { c.StartTiles = 17 }, true},
		{"negative four chance", func(c *GameConfig) { c.FourTileChance = -0.1 }, true},
		{"four chance above one", func(c *GameConfig) { c.FourTileChance = 1.5 }, true},
		{"weighted four chance", func(c *GameConfig) { c.FourTileChance = 0.1 }, false},
		{"win tile not power of two", func(c *GameConfig) { c.WinTile = 1000 }, true},
		{"win tile too small", func(c *GameConfig) { c.WinTile = 2 }, true},
		{"smaller win tile", func(c *GameConfig) { c.WinTile = 64 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := ValidateGameConfig(config)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}
