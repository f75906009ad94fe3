// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"strconv"

	cfg "github.com/dusk-network/dusk-search/pkg/config"
	"github.com/dusk-network/dusk-search/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/urfave/cli"
)

var closeLog = func() error { return nil }

// before loads the configuration and sets up logging. Any command runs after
// it, so commands can rely on cfg.Get().
func before(ctx *cli.Context) error {
	fs := pflag.NewFlagSet("searchctl", pflag.ContinueOnError)
	cfg.DefineFlags(fs)

	// Global cli flags take precedence over env and config file
	if level := ctx.String(VerbosityFlag.Name); level != "" {
		if err := fs.Set("logger.level", level); err != nil {
			return errors.Wrap(err, "invalid verbosity")
		}
	}

	if ctx.Bool(VerifyFlag.Name) {
		if err := fs.Set("search.verifymonotonic", strconv.FormatBool(true)); err != nil {
			return errors.Wrap(err, "invalid verify flag")
		}
	}

	// Loading all configurations. Fail-fast if critical error occurs
	if err := cfg.Load(ctx.String(ConfigFlag.Name), fs); err != nil {
		return errors.Wrap(err, "could not load config")
	}

	out, closer, err := logging.OpenOutput(cfg.Get().Logger.Output)
	if err != nil {
		return err
	}

	closeLog = closer
	logging.InitLog(out)

	log.WithField("file", cfg.Get().UsedConfigFile).Debugln("Loaded config file")
	log.WithField("algorithm", cfg.Get().Search.Algorithm).Debugln("Selected search algorithm")
	return nil
}

// after releases the log output opened by before.
func after(*cli.Context) error {
	return closeLog()
}
