// Package config loads tool configuration from flags, environment
// variables and an optional putgen.yaml file.
package config

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved tool configuration.
type Config struct {
	// Packages are the package patterns scanned for annotated types.
	Packages []string `mapstructure:"packages"`
	// Output controls where and as what package resolvers are emitted.
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig controls the emitted package.
type OutputConfig struct {
	// Dir is the directory generated files are written to.
	Dir string `mapstructure:"dir"`
	// Package is the package name of the generated files.
	Package string `mapstructure:"package"`
}

// flagBindings maps canonical config keys to flag names.
var flagBindings = map[string]string{
	"packages":       "packages",
	"output.dir":     "out",
	"output.package": "pkg",
}

// Load loads configuration with the following precedence:
// 1. Command line flags (only those explicitly set)
// 2. Environment variables (PUTGEN_ prefix)
// 3. Config file (putgen.yaml)
// 4. Default values
func Load(flags *pflag.FlagSet, cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("putgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgFile, err)
		}

		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Canonical keys: dot + snake_case. Env vars: PUTGEN_OUTPUT_DIR.
	v.SetEnvPrefix("PUTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindChangedFlags(v, flags)

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindChangedFlags copies only explicitly-set flags into Viper, preserving
// precedence: flags > env > file > defaults.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) {
	if flags == nil {
		return
	}

	for key, name := range flagBindings {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}

		if f.Value.Type() == "stringSlice" {
			val, _ := flags.GetStringSlice(name)
			v.Set(key, val)

			continue
		}

		v.Set(key, f.Value.String())
	}
}

// setDefaults sets default values (lowest precedence).
func setDefaults(v *viper.Viper) {
	v.SetDefault("packages", []string{"./..."})
	v.SetDefault("output.dir", "./resolvers")
	v.SetDefault("output.package", "resolvers")
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("packages must not be empty")
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	if !token.IsIdentifier(c.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid Go package name", c.Output.Package)
	}

	return nil
}
