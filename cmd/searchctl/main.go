// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	cfg "github.com/dusk-network/dusk-search/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.WithFields(logrus.Fields{
	"app":    "searchctl",
	"prefix": "main",
})

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "searchctl"
	app.Usage = "Run dusk-search lookups and interval selection from the shell"
	app.Copyright = "Copyright (c) 2020 DUSK"
	app.Author = "DUSK 2020"
	app.Version = cfg.SemVer().String()
	app.Before = before
	app.After = after
	app.Commands = []cli.Command{
		{
			Name:      "find",
			Aliases:   []string{"f"},
			Usage:     "prints the lowest index of key in a sorted list of integers",
			ArgsUsage: "<key> <sorted ints...>",
			Flags:     []cli.Flag{AlgorithmFlag},
			Action:    findAction,
		},
		{
			Name:      "sqrt",
			Usage:     "prints the integer square root of v",
			ArgsUsage: "<v>",
			Action:    sqrtAction,
		},
		{
			Name:      "select",
			Aliases:   []string{"s"},
			Usage:     "prints the largest spacing at which count points fit into the intervals",
			ArgsUsage: "<start:end>...",
			Flags:     []cli.Flag{CountFlag},
			Action:    selectAction,
		},
		{
			Name:      "place",
			Usage:     "prints the greedy placement of count points at the given spacing",
			ArgsUsage: "<start:end>...",
			Flags:     []cli.Flag{CountFlag, SpacingFlag},
			Action:    placeAction,
		},
	}
	app.Flags = append(app.Flags, GlobalFlags...)

	return app
}

func main() {
	defer handlePanic()

	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handlePanic() {
	if r := recover(); r != nil {
		log.WithError(fmt.Errorf("%+v", r)).Errorln("Application panic")
		os.Exit(2)
	}
}
