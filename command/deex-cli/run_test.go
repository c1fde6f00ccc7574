// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/message"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/permission"
)

func TestParseMask(t *testing.T) {
	tests := []struct {
		s    string
		mask permission.Mask
		ok   bool
	}{
		{"0", 0, true},
		{"79", 0x4f, true},
		{"0x4f", 0x4f, true},
		{" 2 ", 2, true},
		{"65536", 0, false},
		{"-1", 0, false},
		{"white_list", 0, false},
	}

	for i, item := range tests {
		mask, err := parseMask(item.s)
		if item.ok {
			assert.Nil(t, err, "%d: error", i)
			assert.Equal(t, item.mask, mask, "%d: mask", i)
		} else {
			assert.Equal(t, ErrInvalidMask, err, "%d: error", i)
		}
	}
}

func TestParseRequest(t *testing.T) {
	named, err := parseRequest([]string{"white_list=true", "charge_market_fee=0"})
	assert.Nil(t, err)
	assert.Equal(t, map[string]bool{"white_list": true, "charge_market_fee": false}, named)

	for _, bad := range []string{"white_list", "=true", "white_list=maybe"} {
		_, err := parseRequest([]string{bad})
		assert.Equal(t, ErrInvalidRequest, err, "argument: %s", bad)
	}
}

func TestForce(t *testing.T) {
	after, err := force(0x4f, permission.Mask(permission.WhiteList), map[string]bool{
		"white_list":        false,
		"charge_market_fee": true,
	})
	assert.Nil(t, err)
	assert.Equal(t, permission.Mask(permission.ChargeMarketFee), after)

	_, err = force(0, 0, map[string]bool{"global_settle": true})
	assert.True(t, fault.IsErrPermissionDenied(err), "error: %v", err)

	_, err = force(0x4f, 0, map[string]bool{"no_such_flag": true})
	assert.True(t, fault.IsErrUnknownFlag(err), "error: %v", err)
}

func TestReadOperations(t *testing.T) {
	single := `[0, {"from": "1.2.17", "to": "1.2.18", "amount": {"amount": 5, "asset_id": "1.3.0"}}]`
	ops, err := readOperations([]byte(single))
	assert.Nil(t, err)
	if assert.Equal(t, 1, len(ops)) {
		assert.Equal(t, operation.Transfer, ops[0].Kind())
	}

	ops, err = readOperations([]byte("[" + single + "," + single + "]"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(ops))

	_, err = readOperations([]byte("[]"))
	assert.Equal(t, ErrNoOperations, err)

	_, err = readOperations([]byte(`{"from": "1.2.17"}`))
	assert.NotNil(t, err)
}

func TestOffline(t *testing.T) {
	_, err := offline{}.FetchNamed(context.Background(), "account", "init0")
	assert.True(t, fault.IsErrNetwork(err), "error: %v", err)

	_, err = offline{}.Broadcast(context.Background(), nil)
	assert.True(t, fault.IsErrNetwork(err), "error: %v", err)
}

func TestVerifyMessage(t *testing.T) {
	key, err := keypair.Generate(true, bytes.NewReader(bytes.Repeat([]byte{3}, 32)))
	assert.Nil(t, err)

	s, err := message.Sign("hello world", message.Meta{
		Account:   "init0",
		Block:     42,
		Timestamp: time.Date(2020, 2, 3, 4, 5, 6, 0, time.UTC),
	}, key)
	assert.Nil(t, err)

	v, err := verifyMessage(strings.NewReader(s.String()))
	assert.Nil(t, err)
	assert.Equal(t, &verified{
		Account:   "init0",
		MemoKey:   key.PublicKey().String(),
		Block:     42,
		Timestamp: "2020-02-03T04:05:06",
		Text:      "hello world",
	}, v)

	_, err = verifyMessage(strings.NewReader(strings.Replace(s.String(), "hello", "HELLO", 1)))
	assert.Equal(t, fault.ErrInvalidSignature, err)
}
