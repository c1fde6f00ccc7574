// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.Equal(t, uint64(0), c.Uint64(), "not zero at start")

	var wg sync.WaitGroup
	for i := 0; i < 10; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1000), c.Uint64(), "after increments")
	assert.Equal(t, uint64(1000), c.Reset(), "previous value")
	assert.Equal(t, uint64(0), c.Uint64(), "after reset")
}
