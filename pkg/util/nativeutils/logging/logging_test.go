// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/dusk-network/dusk-search/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetToLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetToLevel("warn")
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	SetToLevel("not-a-level")
	assert.Equal(t, log.TraceLevel, log.GetLevel())
}

func TestInitLogJSON(t *testing.T) {
	r := cfg.Get()
	defer cfg.Mock(&r)
	defer log.SetOutput(os.Stderr)
	defer log.SetFormatter(&log.TextFormatter{})

	m := r
	m.Logger.Level = "debug"
	m.Logger.Format = "json"
	cfg.Mock(&m)

	var buf bytes.Buffer
	InitLog(&buf)

	log.WithField("process", "test").Debugln("hello")

	entry := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["process"])
	assert.Equal(t, "debug", entry["level"])
}

func TestOpenOutput(t *testing.T) {
	w, closer, err := OpenOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closer())

	w, _, err = OpenOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)

	dir, err := ioutil.TempDir("", "dusk-search-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "searchctl")
	w, closer, err = OpenOutput(name)
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closer())
	assert.FileExists(t, name+".log")

	_, _, err = OpenOutput(filepath.Join(dir, "missing", "searchctl"))
	assert.Error(t, err)
}
