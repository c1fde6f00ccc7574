// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memo_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/memo"
)

func newKey(t *testing.T, b byte) *keypair.PrivateKey {
	key, err := keypair.Generate(true, bytes.NewReader(bytes.Repeat([]byte{b}, 32)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return key
}

func TestEncryptDecrypt(t *testing.T) {
	alice := newKey(t, 1)
	bob := newKey(t, 2)
	carol := newKey(t, 3)

	m, err := memo.Encrypt(alice, bob.PublicKey(), "invoice 17", rand.Reader)
	assert.Nil(t, err)
	assert.True(t, alice.PublicKey().Equal(m.From))
	assert.True(t, bob.PublicKey().Equal(m.To))
	assert.False(t, bytes.Contains(m.Message, []byte("invoice")), "message not sealed")

	text, err := m.Decrypt(bob)
	assert.Nil(t, err)
	assert.Equal(t, "invoice 17", text)

	text, err = m.Decrypt(alice)
	assert.Nil(t, err, "sender can read its own memo")
	assert.Equal(t, "invoice 17", text)

	_, err = m.Decrypt(carol)
	assert.Equal(t, fault.ErrMemoKeyMismatch, err)

	m.Message[0] ^= 0xff
	_, err = m.Decrypt(bob)
	assert.Equal(t, fault.ErrInvalidMemo, err)
}

func TestNonceChangesMessage(t *testing.T) {
	alice := newKey(t, 1)
	bob := newKey(t, 2)

	m1, err := memo.Encrypt(alice, bob.PublicKey(), "same text", bytes.NewReader(bytes.Repeat([]byte{1}, 8)))
	assert.Nil(t, err)
	m2, err := memo.Encrypt(alice, bob.PublicKey(), "same text", bytes.NewReader(bytes.Repeat([]byte{2}, 8)))
	assert.Nil(t, err)
	assert.NotEqual(t, m1.Nonce, m2.Nonce)
	assert.NotEqual(t, m1.Message, m2.Message)

	// same nonce in the other direction
	m3, err := memo.Encrypt(bob, alice.PublicKey(), "same text", bytes.NewReader(bytes.Repeat([]byte{1}, 8)))
	assert.Nil(t, err)
	assert.Equal(t, m1.Nonce, m3.Nonce)
	assert.NotEqual(t, m1.Message, m3.Message)
}

func TestEncryptRejects(t *testing.T) {
	alice := newKey(t, 1)
	bob := newKey(t, 2)

	_, err := memo.Encrypt(alice, bob.PublicKey(), "", rand.Reader)
	assert.Equal(t, fault.ErrInvalidMemo, errors.Cause(err))

	_, err = memo.Encrypt(alice, bob.PublicKey(), strings.Repeat("x", memo.MaximumLength+1), rand.Reader)
	assert.Equal(t, fault.ErrInvalidMemo, errors.Cause(err))

	live, err := keypair.Generate(false, bytes.NewReader(bytes.Repeat([]byte{9}, 32)))
	assert.Nil(t, err)
	_, err = memo.Encrypt(alice, live.PublicKey(), "hello", rand.Reader)
	assert.Equal(t, fault.ErrWrongNetworkForKey, err)

	_, err = memo.Encrypt(alice, bob.PublicKey(), "hello", bytes.NewReader(nil))
	assert.NotNil(t, err, "no nonce available")
}

func TestWireForm(t *testing.T) {
	alice := newKey(t, 1)
	bob := newKey(t, 2)

	m, err := memo.Encrypt(alice, bob.PublicKey(), "paid", bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
	assert.Nil(t, err)

	data, err := json.Marshal(m)
	assert.Nil(t, err)

	var raw map[string]interface{}
	assert.Nil(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "18446744073709551615", raw["nonce"], "nonce beyond float precision stays exact")
	assert.Equal(t, alice.PublicKey().String(), raw["from"])

	// as found in a decoded operation
	back, err := memo.FromField(raw)
	assert.Nil(t, err)
	assert.Equal(t, m.Nonce, back.Nonce)

	text, err := back.Decrypt(bob)
	assert.Nil(t, err)
	assert.Equal(t, "paid", text)

	raw["message"] = "not hex"
	_, err = memo.FromField(raw)
	assert.Equal(t, fault.ErrInvalidMemo, errors.Cause(err))

	delete(raw, "to")
	_, err = memo.FromField(raw)
	assert.Equal(t, fault.ErrInvalidMemo, errors.Cause(err))
}
