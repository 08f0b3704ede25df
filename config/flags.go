package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName = "config"
	StoreFlagName  = "store"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "", "Path to configuration file or 'env' to read configuration from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(StoreFlagName, "./lvldbdata", "Path to the engine state store")
	_ = viper.BindPFlag(StoreFlagName, rootCMD.PersistentFlags().Lookup(StoreFlagName))
}
