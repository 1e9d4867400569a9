package config

import (
	"fmt"

	"github.com/Konsultn-Engineering/soql/cache"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type RenderConfig struct {
	File      string `mapstructure:"file" yaml:"file"`
	CacheSize int    `mapstructure:"cache_size" yaml:"cache_size"`
	Output    string `mapstructure:"output" yaml:"output"`
}

const (
	OutputText = "text"
	OutputYaml = "yaml"
)

func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Render: RenderConfig{
			CacheSize: cache.DefaultSize,
			Output:    OutputText,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Render.Output {
	case OutputText, OutputYaml:
	default:
		return fmt.Errorf("unknown render output %q: expected %s or %s", c.Render.Output, OutputText, OutputYaml)
	}
	if c.Render.CacheSize < 0 {
		return fmt.Errorf("render cache size must not be negative: got %d", c.Render.CacheSize)
	}
	return nil
}
