package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Fill modes for the initial grid
const (
	FillRandom = "random"
	FillPerlin = "perlin"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid cave configuration")

// CaveConfig holds every externally supplied generation parameter
type CaveConfig struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	FillPercent      int     `json:"fillPercent"` // 0-100
	FillMode         string  `json:"fillMode"`    // "random" or "perlin"
	NoiseScale       float64 `json:"noiseScale"`  // Perlin sample spacing per cell
	SmoothIterations int     `json:"smoothIterations"`
	WallThreshold    int     `json:"wallThreshold"` // Wall regions smaller than this become floor
	RoomThreshold    int     `json:"roomThreshold"` // Floor regions smaller than this become wall
	PassageRadius    int     `json:"passageRadius"`
	ConnectAll       bool    `json:"connectAll"` // Keep connecting until every room reaches the main room
	BorderSize       int     `json:"borderSize"`
	SquareSize       float64 `json:"squareSize"` // World units per cell
	WallHeight       float64 `json:"wallHeight"`
	Seed             string  `json:"seed"`
	UseRandomSeed    bool    `json:"useRandomSeed"`
}

// DefaultCaveConfig returns the stock 60x80 cave
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Width:            60,
		Height:           80,
		FillPercent:      50,
		FillMode:         FillRandom,
		NoiseScale:       0.1,
		SmoothIterations: 5,
		WallThreshold:    50,
		RoomThreshold:    50,
		PassageRadius:    1,
		ConnectAll:       true,
		BorderSize:       1,
		SquareSize:       1,
		WallHeight:       5,
		UseRandomSeed:    true,
	}
}

// Validate rejects out-of-range values before any grid is built
func (c CaveConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FillPercent < 0 || c.FillPercent > 100:
		return errors.Wrapf(ErrInvalidConfig, "fill percent must be within 0-100, got %d", c.FillPercent)
	case c.FillMode != FillRandom && c.FillMode != FillPerlin:
		return errors.Wrapf(ErrInvalidConfig, "unknown fill mode %q", c.FillMode)
	case c.FillMode == FillPerlin && c.NoiseScale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "noise scale must be positive, got %v", c.NoiseScale)
	case c.SmoothIterations < 0:
		return errors.Wrapf(ErrInvalidConfig, "smooth iterations must not be negative, got %d", c.SmoothIterations)
	case c.WallThreshold < 0 || c.RoomThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "thresholds must not be negative, got wall=%d room=%d", c.WallThreshold, c.RoomThreshold)
	case c.PassageRadius < 0:
		return errors.Wrapf(ErrInvalidConfig, "passage radius must not be negative, got %d", c.PassageRadius)
	case c.BorderSize < 0:
		return errors.Wrapf(ErrInvalidConfig, "border size must not be negative, got %d", c.BorderSize)
	case c.SquareSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "square size must be positive, got %v", c.SquareSize)
	case c.WallHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "wall height must be positive, got %v", c.WallHeight)
	}
	return nil
}

// LoadCaveConfigFile overlays a JSON file onto cfg. Fields absent from the file keep their value.
func LoadCaveConfigFile(path string, cfg *CaveConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read cave config %s", path)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parse cave config %s", path)
	}
	return nil
}

// LoadCaveConfigEnv overlays .env files and then the process environment onto cfg.
// Missing .env files are skipped; the process environment wins over file values.
func LoadCaveConfigEnv(cfg *CaveConfig, files ...string) error {
	values := make(map[string]string)
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		fileValues, err := godotenv.Read(file)
		if err != nil {
			return errors.Wrapf(err, "read env file %s", file)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

// ApplyEnv overlays CAVE_* keys resolved through lookup onto cfg
func ApplyEnv(cfg *CaveConfig, lookup func(string) (string, bool)) error {
	ints := []struct {
		key   string
		field *int
	}{
		{"CAVE_WIDTH", &cfg.Width},
		{"CAVE_HEIGHT", &cfg.Height},
		{"CAVE_FILL_PERCENT", &cfg.FillPercent},
		{"CAVE_SMOOTH_ITERATIONS", &cfg.SmoothIterations},
		{"CAVE_WALL_THRESHOLD", &cfg.WallThreshold},
		{"CAVE_ROOM_THRESHOLD", &cfg.RoomThreshold},
		{"CAVE_PASSAGE_RADIUS", &cfg.PassageRadius},
		{"CAVE_BORDER_SIZE", &cfg.BorderSize},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s", e.key)
			}
			*e.field = n
		}
	}

	floats := []struct {
		key   string
		field *float64
	}{
		{"CAVE_NOISE_SCALE", &cfg.NoiseScale},
		{"CAVE_SQUARE_SIZE", &cfg.SquareSize},
		{"CAVE_WALL_HEIGHT", &cfg.WallHeight},
	}
	for _, e := range floats {
		if v, ok := lookup(e.key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.Wrapf(err, "%s", e.key)
			}
			*e.field = f
		}
	}

	if v, ok := lookup("CAVE_CONNECT_ALL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "CAVE_CONNECT_ALL")
		}
		cfg.ConnectAll = b
	}
	if v, ok := lookup("CAVE_FILL_MODE"); ok {
		cfg.FillMode = v
	}
	// An explicit seed turns random seeding off unless CAVE_RANDOM_SEED says otherwise
	if v, ok := lookup("CAVE_SEED"); ok {
		cfg.Seed = v
		cfg.UseRandomSeed = v == ""
	}
	if v, ok := lookup("CAVE_RANDOM_SEED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "CAVE_RANDOM_SEED")
		}
		cfg.UseRandomSeed = b
	}
	return nil
}
