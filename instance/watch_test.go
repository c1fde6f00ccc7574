// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instance_test

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
)

const (
	watchTimeout = 5 * time.Second

	watchedTemplate = `
return {
    chain = "testing",
    default_account = "init0",
    fees = {
        default = %d,
    },
    logging = {
        levels = {
            DEFAULT = "critical",
        },
    },
}
`
)

func writeWatched(t *testing.T, fileName string, defaultFee int) {
	data := fmt.Sprintf(watchedTemplate, defaultFee)
	if err := ioutil.WriteFile(fileName, []byte(data), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
}

func TestWatchReloads(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	f := newFixture(t, testConfiguration(t))
	defer f.finish()

	fileName := filepath.Join(testingDirName, "deex.conf")
	writeWatched(t, fileName, 20)

	assert.Nil(t, f.instance.Watch(fileName))
	assert.Equal(t, fault.ErrAlreadyInitialised, f.instance.Watch(fileName))

	writeWatched(t, fileName, 33)

	op := newTransfer(t)
	deadline := time.Now().Add(watchTimeout)
	for {
		charged, err := f.instance.ComputeFee(op)
		assert.Nil(t, err)
		if 33 == charged.Amount {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("configuration not reloaded")
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, len(f.instance.Config().Keys), "keys come from the file")
}
