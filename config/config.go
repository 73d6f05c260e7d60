// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ReliabilityConfig holds the thresholds of the identity-gap downgrade
// rule. The defaults keep the rule disabled.
type ReliabilityConfig struct {
	// minimum primary/secondary identity gap below which a call is
	// suspect
	MinIdentDiff float64 `mapstructure:"min-ident-diff"`

	// secondary identity above which a narrow gap downgrades the call
	MaxIdentForDiff float64 `mapstructure:"max-ident-for-diff"`
}

// KmerConfig is the default k range for symbol k-mer indexing.
type KmerConfig struct {
	MinK int `mapstructure:"min-k"`
	MaxK int `mapstructure:"max-k"`
}

// Config is the root-level settings struct, a mix of settings available
// in a config file and those from the command line.
type Config struct {
	Reliability ReliabilityConfig `mapstructure:"reliability"`
	Kmers       KmerConfig        `mapstructure:"kmers"`
}

// SetDefaults registers every setting's default with viper.
func SetDefaults() {
	viper.SetDefault("reliability.min-ident-diff", 0.0)
	viper.SetDefault("reliability.max-ident-for-diff", 1.0)
	viper.SetDefault("kmers.min-k", 2)
	viper.SetDefault("kmers.max-k", 5)
}

// New returns a new Config struct populated by Viper settings (from a
// config file and/or command line arguments).
func New() Config {
	SetDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings: %v", err)
	}
	return c
}
