package config

// StageConfig is the root config for level YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    int                          `yaml:"tileSize"`
	Origin      PositionConfig               `yaml:"origin"` // tile coordinate of the first character of the first row
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

// EnemySpawnConfig places an enemy at session start. Y is the ground y;
// per-type sprite offsets are applied on spawn.
type EnemySpawnConfig struct {
	Type        string `yaml:"type"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	FacingRight bool   `yaml:"facingRight"`
}
