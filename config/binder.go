package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder is a set of related configuration parameters
type Binder interface {
	// Bind declares the flags of the binder in cmd and sets
	// their defaults in v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the parameters from v once
	// the flags have been parsed
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the optional configuration file
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfig{Path: f.Path, Cause: errors.WithStack(err)}
	}

	return nil
}
