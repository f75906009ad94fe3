// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	cfg "github.com/dusk-network/dusk-search/pkg/config"
	"github.com/dusk-network/dusk-search/pkg/search"
	"github.com/dusk-network/dusk-search/pkg/search/interval"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	notFound   = "not found"
	noSolution = "no solution"

	// maxVerifySpan bounds the spacings --verify walks, each one costing a
	// full feasibility pass over the intervals.
	maxVerifySpan = 1 << 16
)

var (
	errMissingArgument = errors.New("missing argument")
	errNotSorted       = errors.New("sequence is not sorted")
)

func findAction(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) == 0 {
		return errors.Wrap(errMissingArgument, "key")
	}

	key, err := strconv.Atoi(args.First())
	if err != nil {
		return errors.Wrapf(err, "invalid key %q", args.First())
	}

	s, err := parseInts(args.Tail())
	if err != nil {
		return err
	}

	if !sort.IntsAreSorted(s) {
		return errNotSorted
	}

	algorithm := ctx.String("algorithm")
	if algorithm == "" {
		algorithm = cfg.Get().Search.Algorithm
	}

	find, err := finder(algorithm)
	if err != nil {
		return err
	}

	i, found := find(s, key)
	log.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"key":       key,
		"len":       len(s),
		"found":     found,
	}).Debugln("find")

	if !found {
		_, err = fmt.Fprintln(ctx.App.Writer, notFound)
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, i)
	return err
}

func finder(algorithm string) (func([]int, int) (int, bool), error) {
	switch algorithm {
	case cfg.AlgorithmBinary:
		return search.Binary[int], nil
	case cfg.AlgorithmExponential:
		return search.Exponential[int], nil
	}

	return nil, errors.Errorf("unknown search algorithm %q", algorithm)
}

func sqrtAction(ctx *cli.Context) error {
	if len(ctx.Args()) == 0 {
		return errors.Wrap(errMissingArgument, "value")
	}

	v, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid value %q", ctx.Args().First())
	}

	_, err = fmt.Fprintln(ctx.App.Writer, search.Sqrt(v))
	return err
}

func selectAction(ctx *cli.Context) error {
	v, err := parseIntervals(ctx.Args())
	if err != nil {
		return err
	}

	count := ctx.Int("count")
	if cfg.Get().Search.VerifyMonotonic {
		if err := verifyFeasibility(v, count); err != nil {
			return errors.Wrap(err, "feasibility check")
		}
	}

	d, found := interval.MaxSpacing(v, count)
	if !found {
		_, err = fmt.Fprintln(ctx.App.Writer, noSolution)
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, d)
	return err
}

// verifyFeasibility walks the spacings [1, capacity], stopping after
// maxVerifySpan of them.
func verifyFeasibility(v interval.Intervals, count int) error {
	span := v.Capacity()
	if span > maxVerifySpan {
		log.WithFields(logrus.Fields{
			"capacity": span,
			"checked":  maxVerifySpan,
		}).Warnln("feasibility check truncated")
		span = maxVerifySpan
	}

	return search.VerifyMonotonic(1, span+1, interval.Feasibility(v, count))
}

func placeAction(ctx *cli.Context) error {
	v, err := parseIntervals(ctx.Args())
	if err != nil {
		return err
	}

	positions := interval.Place(v, ctx.Int("count"), ctx.Int("spacing"))
	if positions == nil {
		_, err = fmt.Fprintln(ctx.App.Writer, noSolution)
		return err
	}

	str := make([]string, len(positions))
	for i, p := range positions {
		str[i] = strconv.Itoa(p)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, strings.Join(str, " "))
	return err
}

func parseInts(args []string) ([]int, error) {
	s := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid element %d", i)
		}
		s[i] = n
	}
	return s, nil
}

// parseIntervals reads intervals written as start:end
func parseIntervals(args []string) (interval.Intervals, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(errMissingArgument, "intervals")
	}

	v := make(interval.Intervals, len(args))
	for i, a := range args {
		bounds := strings.SplitN(a, ":", 2)
		if len(bounds) != 2 {
			return nil, errors.Errorf("interval %q is not start:end", a)
		}

		start, err := strconv.Atoi(bounds[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid start in %q", a)
		}

		end, err := strconv.Atoi(bounds[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid end in %q", a)
		}

		v[i] = interval.Interval{Start: start, End: end}
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}
