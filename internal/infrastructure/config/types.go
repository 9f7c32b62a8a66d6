package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display     DisplayConfig           `yaml:"display"`
	World       WorldConfig             `yaml:"world"`
	Player      PlayerConfig            `yaml:"player"`
	Camera      CameraConfig            `yaml:"camera"`
	Enemies     EnemiesConfig           `yaml:"enemies"`
	Bullets     BulletsConfig           `yaml:"bullets"`
	Session     SessionConfig           `yaml:"session"`
	Sprites     map[string]SpriteConfig `yaml:"sprites"`
	Persistence PersistenceConfig       `yaml:"persistence"`
	Logging     LoggingConfig           `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type WorldConfig struct {
	TileSize    int `yaml:"tileSize"`
	GroundLevel int `yaml:"groundLevel"` // y of the player's centre when standing on the ground plane
	MaxBlocks   int `yaml:"maxBlocks"`
}

// PlayerConfig holds locomotion tuning. Velocities are pixels per tick.
type PlayerConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	JumpVelocity      float64 `yaml:"jumpVelocity"` // negative is up
	Gravity           float64 `yaml:"gravity"`
	AirResistance     float64 `yaml:"airResistance"`
	BounceFactor      float64 `yaml:"bounceFactor"`
	MinBounceVelocity float64 `yaml:"minBounceVelocity"`
	JumpGraceFrames   int     `yaml:"jumpGraceFrames"`
}

// CameraConfig configures the dead-zone follow camera
type CameraConfig struct {
	BorderX int `yaml:"borderX"`
	BorderY int `yaml:"borderY"`
	MaxY    int `yaml:"maxY"` // camera never looks below this
}

type EnemiesConfig struct {
	MaxEnemies           int     `yaml:"maxEnemies"`
	HitPoints            int     `yaml:"hitPoints"`
	RespawnFrames        int     `yaml:"respawnFrames"`
	SpawnRange           int     `yaml:"spawnRange"` // random x offset around the camera, both sides
	MaxPlacementAttempts int     `yaml:"maxPlacementAttempts"`
	StepSize             float64 `yaml:"stepSize"`
	Scale                float64 `yaml:"scale"`
}

type BulletsConfig struct {
	MaxBullets  int     `yaml:"maxBullets"`
	Speed       float64 `yaml:"speed"`
	MaxDistance int     `yaml:"maxDistance"`
	Scale       float64 `yaml:"scale"`
}

type SessionConfig struct {
	Hearts              int  `yaml:"hearts"`
	InvincibilityFrames int  `yaml:"invincibilityFrames"`
	BlinkInterval       int  `yaml:"blinkInterval"`
	EnemiesActive       bool `yaml:"enemiesActive"`
}

// SpriteConfig describes the drawn shape of a sprite kind
type SpriteConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"` // #rrggbb
}

type PersistenceConfig struct {
	AppName string `yaml:"appName"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}
