// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config package should avoid importing any dusk-search packages in order to
// prevent any cyclic-dependancy issues

const (
	// current working dir
	searchPath1 = "."
	// home datadir
	searchPath2 = "$HOME/.dusk/"

	// name for the config file. Does not include extension.
	configFileName = "dusk-search"
)

var (
	r *Registry
)

// Registry stores all loaded configurations according to the config order
// NB It should be cheap to be copied by value
type Registry struct {
	UsedConfigFile string

	// All configuration groups
	Logger loggerConfiguration
	Search searchConfiguration
}

// Load makes an attempt to read and unmarshal any configs from flags, env and
// the dusk-search config file.
//
// It uses the following precedence order. Each item takes precedence over the item below it:
//  - flag
//  - env
//  - config
//  - default
//
// A missing config file is not an error unless confFile names one explicitly.
// flags may be nil; otherwise it should have been populated with DefineFlags.
func Load(confFile string, flags *pflag.FlagSet) error {
	reg := new(Registry)

	if err := reg.init(confFile, flags); err != nil {
		return err
	}

	// Validation should be done by the consumers as they will be the best at
	// knowing what they expect
	r = reg
	return nil
}

// Get returns registry by value in order to avoid further modifications after
// initial configuration loading
func Get() Registry {
	return *r
}

func (r *Registry) init(confFile string, flags *pflag.FlagSet) error {
	v := viper.New()
	setDefaults(v)

	// Make an attempt to find dusk-search.toml/.json/.yaml in any of the
	// provided paths below
	v.SetConfigName(configFileName)
	v.AddConfigPath(searchPath1)
	v.AddConfigPath(searchPath2)

	// confPath is overwritten by the one from command line
	if len(confFile) > 0 {
		v.SetConfigFile(confFile)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "error reading config file")
		}
	}

	defineENV(v)

	// Bind all command line parameters to their corresponding file configs
	//
	// e.g CLI argument `--logger.level="warn"` will overwrite the value from
	// `[logger] level = "info"` in the loaded config file
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return errors.Wrap(err, "unable to bind pflags")
		}
	}

	// Unmarshal all configurations from all conf levels to the registry struct
	if err := v.Unmarshal(r); err != nil {
		return errors.Wrap(err, "unable to decode into struct")
	}

	r.UsedConfigFile = v.ConfigFileUsed()
	return nil
}

// DefineFlags adds the settings which can be overridden from the command line
// to fs. The defaults match the ones of an empty config.
func DefineFlags(fs *pflag.FlagSet) {
	_ = fs.StringP("logger.level", "l", defaultLoggerLevel, "override logger.level settings in config file")
	_ = fs.StringP("logger.output", "o", defaultLoggerOutput, "specifies the log output")
	_ = fs.String("logger.format", defaultLoggerFormat, "log format, text or json")
	_ = fs.StringP("search.algorithm", "a", AlgorithmBinary, "sorted slice search algorithm, binary or exponential")
	_ = fs.Bool("search.verifymonotonic", false, "check predicates for monotonicity before searching")
}

// define a set of environment variables as bindings to config file settings
func defineENV(v *viper.Viper) {
	// Bind config key logger.level to ENV var DUSK_SEARCH_LOGGER_LEVEL
	if err := v.BindEnv("logger.level", "DUSK_SEARCH_LOGGER_LEVEL"); err != nil {
		log.WithError(err).Warnln("defineENV")
	}

	if err := v.BindEnv("search.algorithm", "DUSK_SEARCH_SEARCH_ALGORITHM"); err != nil {
		log.WithError(err).Warnln("defineENV")
	}

	if err := v.BindEnv("search.verifymonotonic", "DUSK_SEARCH_SEARCH_VERIFYMONOTONIC"); err != nil {
		log.WithError(err).Warnln("defineENV")
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", defaultLoggerLevel)
	v.SetDefault("logger.output", defaultLoggerOutput)
	v.SetDefault("logger.format", defaultLoggerFormat)
	v.SetDefault("search.algorithm", AlgorithmBinary)
	v.SetDefault("search.verifymonotonic", false)
}

// Mock should be used only in test packages. It could be useful when a unit
// test needs to be rerun with configs different from the default ones.
func Mock(m *Registry) {
	r = m
}

func init() {
	// By default Registry should be populated with defaults but not nil. In
	// that way, consumers (packages) can run their unit tests without loading
	r = new(Registry)
	r.Logger.Level = defaultLoggerLevel
	r.Logger.Output = defaultLoggerOutput
	r.Logger.Format = defaultLoggerFormat
	r.Search.Algorithm = AlgorithmBinary
}
