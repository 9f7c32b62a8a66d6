package config

// Default returns the tuning of the original prototype.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  240,
			ScreenHeight: 160,
			Scale:        3,
			Framerate:    60,
			Title:        "Ninja Run",
		},
		World: WorldConfig{
			TileSize:    16,
			GroundLevel: 64,
			MaxBlocks:   32,
		},
		Player: PlayerConfig{
			Width:             16,
			Height:            16,
			Speed:             3,
			JumpVelocity:      -10,
			Gravity:           0.5,
			AirResistance:     0.95,
			BounceFactor:      0.75,
			MinBounceVelocity: 1,
			JumpGraceFrames:   3,
		},
		Camera: CameraConfig{
			BorderX: 100,
			BorderY: 64,
			MaxY:    0,
		},
		Enemies: EnemiesConfig{
			MaxEnemies:           2,
			HitPoints:            3,
			RespawnFrames:        120,
			SpawnRange:           120,
			MaxPlacementAttempts: 64,
			StepSize:             1,
			Scale:                0.5,
		},
		Bullets: BulletsConfig{
			MaxBullets:  3,
			Speed:       2,
			MaxDistance: 100,
			Scale:       0.5,
		},
		Session: SessionConfig{
			Hearts:              3,
			InvincibilityFrames: 60,
			BlinkInterval:       4,
		},
		Sprites: map[string]SpriteConfig{
			"ninja":  {Width: 16, Height: 16, Color: "#64c864"},
			"block":  {Width: 16, Height: 16, Color: "#505064"},
			"dino":   {Width: 32, Height: 32, Color: "#c86464"},
			"turtle": {Width: 32, Height: 32, Color: "#64a0c8"},
			"rocket": {Width: 16, Height: 16, Color: "#ffc864"},
			"head":   {Width: 16, Height: 16, Color: "#ff5050"},
		},
		Persistence: PersistenceConfig{
			AppName: "ninjarun",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
