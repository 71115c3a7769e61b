// Package config loads simulation tuning from YAML. Defaults are embedded so
// the game always starts; a config file overrides whatever fields it names.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Screen holds the playfield dimensions in pixels.
type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player holds the player movement and survivability tuning.
type Player struct {
	Accel       float64 `yaml:"accel"`
	Friction    float64 `yaml:"friction"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Health      int     `yaml:"health"`
	Size        float64 `yaml:"size"`
	InvulnTicks int     `yaml:"invuln_ticks"`
}

// Projectile holds the shot tuning.
type Projectile struct {
	Speed     float64 `yaml:"speed"`
	Radius    float64 `yaml:"radius"`
	Damage    int     `yaml:"damage"`
	HitMargin float64 `yaml:"hit_margin"`
}

// Swarm holds the swarm population tuning.
type Swarm struct {
	Count       int     `yaml:"count"`
	Health      int     `yaml:"health"`
	Radius      float64 `yaml:"radius"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	PhaseStep   float64 `yaml:"phase_step"`
	Wobble      float64 `yaml:"wobble"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// Arena holds the encounter pacing tuning.
type Arena struct {
	IntroTicks int `yaml:"intro_ticks"`
}

// Config is the full tuning set.
type Config struct {
	Screen     Screen     `yaml:"screen"`
	Player     Player     `yaml:"player"`
	Projectile Projectile `yaml:"projectile"`
	Swarm      Swarm      `yaml:"swarm"`
	Arena      Arena      `yaml:"arena"`
}

// Default returns the embedded tuning.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load returns the embedded defaults overlaid with the YAML file at path. An
// empty path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tuning the simulation cannot run with.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil config")
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}
	if c.Player.Friction <= 0 || c.Player.Friction >= 1 {
		return fmt.Errorf("config: player friction must be in (0, 1), got %g", c.Player.Friction)
	}
	if c.Player.MaxSpeed <= 0 {
		return fmt.Errorf("config: player max_speed must be positive, got %g", c.Player.MaxSpeed)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("config: player health must be positive, got %d", c.Player.Health)
	}
	if c.Player.InvulnTicks <= 0 {
		return fmt.Errorf("config: player invuln_ticks must be positive, got %d", c.Player.InvulnTicks)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("config: projectile speed must be positive, got %g", c.Projectile.Speed)
	}
	if c.Projectile.Damage <= 0 {
		return fmt.Errorf("config: projectile damage must be positive, got %d", c.Projectile.Damage)
	}
	if c.Swarm.Count <= 0 {
		return fmt.Errorf("config: swarm count must be positive, got %d", c.Swarm.Count)
	}
	if c.Swarm.Health <= 0 {
		return fmt.Errorf("config: swarm health must be positive, got %d", c.Swarm.Health)
	}
	if c.Swarm.SpeedMin <= 0 || c.Swarm.SpeedMax < c.Swarm.SpeedMin {
		return fmt.Errorf("config: swarm speed range [%g, %g] invalid", c.Swarm.SpeedMin, c.Swarm.SpeedMax)
	}
	if c.Arena.IntroTicks < 0 {
		return fmt.Errorf("config: arena intro_ticks must not be negative, got %d", c.Arena.IntroTicks)
	}
	return nil
}
