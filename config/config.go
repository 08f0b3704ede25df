package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	EngineConfig EngineConfig             `mapstructure:"engine"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains"`
}

type EngineConfig struct {
	Id                        string `mapstructure:"id"`
	Env                       string `mapstructure:"env"`
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	CustodianAddress          string `mapstructure:"custodianAddress"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
}

func (c *Config) Validate() error {
	if !common.IsHexAddress(c.EngineConfig.CustodianAddress) {
		return fmt.Errorf("invalid engine.CustodianAddress %q", c.EngineConfig.CustodianAddress)
	}
	if _, err := zerolog.ParseLevel(c.EngineConfig.LogLevel); err != nil {
		return fmt.Errorf("invalid engine.LogLevel: %w", err)
	}
	return nil
}

// GetConfigFromFile reads the configuration from the file at path and
// merges it over base.
func GetConfigFromFile(path string, base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	if base != nil {
		if err := mergo.Merge(config, base); err != nil {
			return nil, err
		}
	}
	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetConfigFromENV reads the engine configuration from ESCROW_*
// environment variables and merges it over base. Chain configurations
// can only come from a file.
func GetConfigFromENV(base *Config) (*Config, error) {
	config := &Config{}

	v := viper.New()
	v.SetEnvPrefix("ESCROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"engine.id",
		"engine.env",
		"engine.logLevel",
		"engine.apiAddr",
		"engine.healthPort",
		"engine.custodianAddress",
		"engine.openTelemetryCollectorURL",
	} {
		_ = v.BindEnv(key)
	}

	raw := v.AllSettings()
	if err := mapstructure.Decode(raw, config); err != nil {
		return nil, err
	}

	if base != nil {
		if err := mergo.Merge(config, base); err != nil {
			return nil, err
		}
	}
	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
