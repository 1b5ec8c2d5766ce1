package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

const EnvPrefix = "MINES"

type Config struct {
	Mode       string `mapstructure:"mode"`
	Difficulty string `mapstructure:"difficulty"`
	// Custom board as "width=..&height=..&mines=..", overrides Difficulty.
	Custom string `mapstructure:"custom"`
	Seed   uint64 `mapstructure:"seed"`
	Color  bool   `mapstructure:"color"`

	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("difficulty", Easy.String())
	v.SetDefault("custom", "")
	v.SetDefault("seed", 0)
	v.SetDefault("color", true)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)
}

/*
Load reads the configuration from path (json, yaml or toml, picked by
extension) and from MINES_* environment variables, which take precedence.
An empty path skips the file.
*/
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &c, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Board resolves the configured board: the custom board when one is set,
// the difficulty preset otherwise.
func (c Config) Board() (mines.Config, error) {
	if c.Custom != "" {
		return ParseCustom(c.Custom)
	}
	d, err := ParseDifficulty(c.Difficulty)
	if err != nil {
		return mines.Config{}, err
	}
	return d.BoardConfig(), nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"difficulty":       c.Difficulty,
		"custom":           c.Custom,
		"seed":             c.Seed,
		"color":            c.Color,
		"log_file":         c.LogFile,
		"log_max_size_mb":  c.LogMaxSizeMB,
		"log_max_backups":  c.LogMaxBackups,
		"log_max_age_days": c.LogMaxAgeDays,
	}
}
