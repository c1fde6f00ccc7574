// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/chain"
	"github.com/bitmark-inc/deex/fault"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Deex, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %s", name)

		p, err := chain.Get(name)
		assert.Nil(t, err, "chain: %s", name)
		assert.Equal(t, name, p.Name)
		assert.Equal(t, 32, len(p.ChainIDBytes()), "chain id: %s", name)
	}

	assert.False(t, chain.Valid("bitmark"))
	_, err := chain.Get("bitmark")
	assert.Equal(t, fault.ErrInvalidChain, err)
}
