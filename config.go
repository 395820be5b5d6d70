package rxkit

import (
	"os"

	"github.com/codingconcepts/env"
	"gopkg.in/yaml.v3"
)

const DefaultBundleTable = "rx_bundles"

type Config struct {
	Driver  string `json:"driver" yaml:"driver" env:"RXKIT_DRIVER"`
	Dialect string `json:"dialect" yaml:"dialect" env:"RXKIT_DIALECT"`
	DSN     string `json:"dsn" yaml:"dsn" env:"RXKIT_DSN"`

	// BundleDir is the directory of .properties / .yaml bundles
	BundleDir string `json:"bundleDir" yaml:"bundleDir" env:"RXKIT_BUNDLE_DIR"`

	// BundleTable is the table used by the database bundle store
	BundleTable string `json:"bundleTable" yaml:"bundleTable" env:"RXKIT_BUNDLE_TABLE"`

	Locale     string `json:"locale" yaml:"locale" env:"RXKIT_LOCALE"`
	NamePrefix string `json:"namePrefix" yaml:"namePrefix" env:"RXKIT_NAME_PREFIX"`
}

func LoadConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := env.Set(&config); err != nil {
		return nil, err
	}

	config.setDefaults()
	return &config, nil
}

// NewConfigFromEnv builds the config from the RXKIT_* variables only
func NewConfigFromEnv() (*Config, error) {
	var config Config
	if err := env.Set(&config); err != nil {
		return nil, err
	}

	config.setDefaults()
	return &config, nil
}

func (c *Config) setDefaults() {
	if len(c.BundleTable) == 0 {
		c.BundleTable = DefaultBundleTable
	}

	if len(c.NamePrefix) == 0 {
		c.NamePrefix = DefaultNamePrefix
	}
}
