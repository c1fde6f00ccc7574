// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/background"
	"github.com/bitmark-inc/deex/configuration"
)

const (
	watchTimeout = 5 * time.Second
)

func TestWatcherMissingFile(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := configuration.NewWatcher(filepath.Join(testingDirName, "absent"), logger.New("watcher"))
	assert.NotNil(t, err)
}

func TestWatcher(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fileName := filepath.Join(testingDirName, "watched.conf")
	assert.Nil(t, ioutil.WriteFile(fileName, []byte("return {}\n"), 0600))

	w, err := configuration.NewWatcher(fileName, logger.New("watcher"))
	if !assert.Nil(t, err) {
		return
	}
	abs, _ := filepath.Abs(fileName)
	assert.Equal(t, abs, w.FilePath())

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	assert.Nil(t, ioutil.WriteFile(fileName, []byte("return { chain = \"local\" }\n"), 0600))

	select {
	case <-w.Change():
	case <-time.After(watchTimeout):
		t.Fatal("no change event")
	}

	assert.Nil(t, os.Remove(fileName))

	select {
	case <-w.Remove():
	case <-time.After(watchTimeout):
		t.Fatal("no remove event")
	}
}
