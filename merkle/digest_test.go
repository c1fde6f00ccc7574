// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/merkle"
)

// SHA3-256 of the empty string
const emptyDigest = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

func TestNewDigest(t *testing.T) {
	d := merkle.NewDigest([]byte{})

	assert.Equal(t, emptyDigest, d.String(), "string")
	assert.Equal(t, "<SHA3-256:"+emptyDigest+">", fmt.Sprintf("%#v", d), "go string")
	assert.False(t, d.IsZero(), "zero")
	assert.True(t, merkle.Digest{}.IsZero(), "zero value")
}

func TestDigestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("deex"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"`+d.String()+`"`, string(buffer))

	var r merkle.Digest
	err = json.Unmarshal(buffer, &r)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, r)

	err = r.UnmarshalText([]byte("abcd"))
	assert.Equal(t, fault.ErrInvalidCount, err)
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	err := merkle.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidCount, err)

	b := make([]byte, merkle.DigestLength)
	b[0] = 0x42
	err = merkle.DigestFromBytes(&d, b)
	assert.Nil(t, err)
	assert.Equal(t, byte(0x42), d[0])
}
