// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package config

import (
	"github.com/Masterminds/semver"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "config")

// A single point of constants definition
const (
	// Version is the release of the dusk-search tools
	Version = "0.3.1"

	// AlgorithmBinary selects search.Binary for sorted slices
	AlgorithmBinary = "binary"
	// AlgorithmExponential selects search.Exponential for sorted slices
	AlgorithmExponential = "exponential"

	defaultLoggerLevel  = "info"
	defaultLoggerOutput = "stderr"
	defaultLoggerFormat = "text"
)

// SemVer returns Version parsed. It panics on a malformed Version.
func SemVer() *semver.Version {
	return semver.MustParse(Version)
}
