// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// VerbosityFlag overrides logger.level.
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level, overrides logger.level",
	}
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "dusk-search.toml configuration file",
	}
	// VerifyFlag checks the feasibility predicate before searching.
	VerifyFlag = cli.BoolFlag{
		Name:  "verify",
		Usage: "check the search predicate for monotonicity first, overrides search.verifymonotonic (select checks at most the first 65536 spacings, each in time linear in the intervals)",
	}

	// AlgorithmFlag picks the sorted slice search.
	AlgorithmFlag = cli.StringFlag{
		Name:  "algorithm, a",
		Usage: "binary or exponential, overrides search.algorithm",
	}
	// CountFlag is the number of points to place.
	CountFlag = cli.IntFlag{
		Name:  "count, c",
		Value: 1,
		Usage: "number of points to place",
	}
	// SpacingFlag is the minimum distance between placed points.
	SpacingFlag = cli.IntFlag{
		Name:  "spacing, d",
		Value: 1,
		Usage: "minimum distance between consecutive points",
	}
)

var (
	// GlobalFlags flags usable in a global context.
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		VerbosityFlag,
		VerifyFlag,
	}
)
