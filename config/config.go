// Package config loads runtime settings with viper
// Every key has a default; a config file and PAINTBALL_ environment variables override them
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/paintball/component"
	"github.com/lixenwraith/paintball/parameter"
)

// FileName is the config file base name searched for in each config dir
const FileName = "paintball"

// EnvPrefix prefixes environment overrides, e.g. PAINTBALL_SEED
const EnvPrefix = "PAINTBALL"

var (
	ErrInvalidTickRate = errors.New("tickRate must be positive")
	ErrInvalidAgents   = errors.New("agents must be between 1 and the team count")
	ErrInvalidHumans   = errors.New("humans must be between 0 and agents")
	ErrInvalidCapacity = errors.New("projectile capacities must be positive")
)

// Config holds every tunable runtime setting
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`

	Seed     uint64 `mapstructure:"seed"`
	TickRate int    `mapstructure:"tickRate"`

	Agents        int     `mapstructure:"agents"`
	Humans        int     `mapstructure:"humans"`
	Rounds        int     `mapstructure:"rounds"`
	RoundEndDelay float64 `mapstructure:"roundEndDelay"`

	ProjectileCapacity int     `mapstructure:"projectileCapacity"`
	PendingCapacity    int     `mapstructure:"pendingCapacity"`
	WorldBound         float64 `mapstructure:"worldBound"`

	Audio     bool   `mapstructure:"audio"`
	ColorMode string `mapstructure:"colorMode"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("seed", 1)
	v.SetDefault("tickRate", parameter.TickRate)

	v.SetDefault("agents", parameter.PlayerCount)
	v.SetDefault("humans", 1)
	v.SetDefault("rounds", parameter.RoundCount)
	v.SetDefault("roundEndDelay", parameter.RoundEndDelaySeconds)

	v.SetDefault("projectileCapacity", parameter.ProjectileCapacity)
	v.SetDefault("pendingCapacity", parameter.PendingCapacity)
	v.SetDefault("worldBound", parameter.WorldBound)

	v.SetDefault("audio", true)
	v.SetDefault("colorMode", "auto")
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load searches dirs for paintball.{toml,json,yaml} and decodes the result
// A missing file is not an error, defaults and environment still apply
func Load(dirs ...string) (Config, error) {
	v := New()
	v.SetConfigName(FileName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFile reads one explicit config file, which must exist
func LoadFile(path string) (Config, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the arena cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	if c.Agents < 1 || c.Agents > component.TeamCount {
		return ErrInvalidAgents
	}
	if c.Humans < 0 || c.Humans > c.Agents {
		return ErrInvalidHumans
	}
	if c.ProjectileCapacity <= 0 || c.PendingCapacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// TickInterval is the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
