package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/caelum-dev/caelum/internal/model"
)

// FileName is the default config file name in the working directory.
const FileName = "caelum.yaml"

// Config represents caelum.yaml.
type Config struct {
	Notion NotionConfig `yaml:"notion"`
	Import ImportConfig `yaml:"import"`
	Log    LogConfig    `yaml:"log"`
}

// NotionConfig names the properties of the expense database.
type NotionConfig struct {
	NameProperty   string `yaml:"name_property"`
	AmountProperty string `yaml:"amount_property"`
	DateProperty   string `yaml:"date_property"`
	CardProperty   string `yaml:"card_property"`
	MonthProperty  string `yaml:"month_property"`
	TagProperty    string `yaml:"tag_property"`
	TagColor       string `yaml:"tag_color"` // color for newly created tags
}

// ImportConfig controls CSV parsing.
type ImportConfig struct {
	Format      string   `yaml:"format"`
	DateLayouts []string `yaml:"date_layouts,omitempty"` // Go time layouts, tried in order
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Load reads a caelum.yaml file from disk. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the stock expense database layout.
func Default() *Config {
	return &Config{
		Notion: NotionConfig{
			NameProperty:   "Name",
			AmountProperty: "Amount",
			DateProperty:   "Date",
			CardProperty:   "Card",
			MonthProperty:  "Month",
			TagProperty:    "Tag",
			TagColor:       "gray",
		},
		Import: ImportConfig{
			Format:      "export",
			DateLayouts: append([]string(nil), model.DefaultDateLayouts...),
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
