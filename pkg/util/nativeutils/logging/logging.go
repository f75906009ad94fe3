// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"
	"os"

	cfg "github.com/dusk-network/dusk-search/pkg/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// InitLog applies the configured logger level and format and sends the log
// to out.
func InitLog(out io.Writer) {
	// apply logger level from configurations
	SetToLevel(cfg.Get().Logger.Level)

	if cfg.Get().Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	log.SetOutput(out)
}

// SetToLevel parses l and applies it, falling back to trace on a bad level.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// OpenOutput resolves the logger.output setting. "stdout" and "stderr" map to
// the process streams, anything else names a file which gets a .log suffix.
// The returned closer must be called once logging is done.
func OpenOutput(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch output {
	case "stdout":
		return os.Stdout, noop, nil
	case "", "stderr":
		return os.Stderr, noop, nil
	}

	f, err := os.Create(output + ".log")
	if err != nil {
		return nil, noop, errors.Wrapf(err, "could not create log file %q", output)
	}
	return f, f.Close, nil
}
