package threadchart

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBalancedPath    = "threadsBalanced.csv"
	DefaultNotBalancedPath = "threadsUnBalanced.csv"
)

// Config describes one chart run.
type Config struct {
	Balanced    string `yaml:"balanced"`
	NotBalanced string `yaml:"not_balanced"`
	Output      string `yaml:"output"`
	Title       string `yaml:"title"`
	DPI         int    `yaml:"dpi"`
	Show        bool   `yaml:"show"`
	Table       bool   `yaml:"table"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Balanced:    DefaultBalancedPath,
		NotBalanced: DefaultNotBalancedPath,
		Output:      DefaultOutput,
		Title:       DefaultTitle,
		DPI:         DefaultDPI,
		Show:        true,
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

// Options turns the chart settings of c into Comparison options.
func (c Config) Options() []Option {
	opts := []Option{
		WithTitle(c.Title),
		WithOutput(c.Output),
		WithDPI(c.DPI),
	}
	if !c.Show {
		opts = append(opts, WithoutDisplay())
	}
	return opts
}
