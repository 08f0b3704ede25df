package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/bundleswap/escrow-engine/assets"
	"github.com/bundleswap/escrow-engine/config/chain"
)

// AssetConfig describes one asset contract the engine accepts into
// custody, classified as fungible or non-fungible at registration
// time.
type AssetConfig struct {
	Address  common.Address
	Kind     assets.Kind
	Decimals uint8
}

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	// Assets maps symbol to asset config.
	Assets map[string]AssetConfig
}

type RawAssetConfig struct {
	Symbol   string `mapstructure:"symbol"`
	Address  string `mapstructure:"address"`
	Kind     string `mapstructure:"kind" default:"fungible"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`

	Assets []RawAssetConfig `mapstructure:"assets"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}

	for _, a := range c.Assets {
		if a.Symbol == "" {
			return fmt.Errorf("required field asset.Symbol empty for chain %v", *c.Id)
		}
		if !common.IsHexAddress(a.Address) {
			return fmt.Errorf("invalid address %q for asset %s", a.Address, a.Symbol)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	assetConfigs := make(map[string]AssetConfig)
	for _, a := range c.Assets {
		kind, err := assets.ParseKind(a.Kind)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", a.Symbol, err)
		}

		assetConfigs[a.Symbol] = AssetConfig{
			Address:  common.HexToAddress(a.Address),
			Kind:     kind,
			Decimals: a.Decimals,
		}
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Assets:             assetConfigs,
	}, nil
}

// KindOf resolves the configured kind of an asset contract, making the
// config usable as a kind registry for the transfer adapter and the
// approval checker.
func (c *EVMConfig) KindOf(asset common.Address) (assets.Kind, error) {
	for _, a := range c.Assets {
		if a.Address == asset {
			return a.Kind, nil
		}
	}

	return 0, fmt.Errorf("no asset configured at %s", asset.Hex())
}
