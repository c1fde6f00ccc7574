// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectid_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s   string
		id  objectid.ID
		err error
	}{
		{"1.2.0", objectid.CommitteeAccount, nil},
		{"1.3.0", objectid.CoreAsset, nil},
		{"2.1.0", objectid.DynamicGlobalProperty, nil},
		{"1.2.18446744073709551615", objectid.Account(18446744073709551615), nil},
		{"1.14.7", objectid.New(1, objectid.WorkerType, 7), nil},
		{"", objectid.ID{}, fault.ErrInvalidObjectID},
		{"1.2", objectid.ID{}, fault.ErrInvalidObjectID},
		{"0.2.1", objectid.ID{}, fault.ErrInvalidObjectID},
		{"1.256.1", objectid.ID{}, fault.ErrInvalidObjectID},
		{"1.2.x", objectid.ID{}, fault.ErrInvalidObjectID},
		{"init0", objectid.ID{}, fault.ErrInvalidObjectID},
	}

	for i, item := range tests {
		id, err := objectid.Parse(item.s)
		assert.Equal(t, item.err, err, "%d: error for: %q", i, item.s)
		assert.Equal(t, item.id, id, "%d: id for: %q", i, item.s)
		if nil == item.err {
			assert.Equal(t, item.s, id.String(), "%d: round trip", i)
		}
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, objectid.Account(9).IsAccount())
	assert.False(t, objectid.Account(9).IsAsset())
	assert.True(t, objectid.Asset(1).IsAsset())
	assert.True(t, objectid.ID{}.IsZero())
	assert.True(t, objectid.IsID("1.13.4"))
	assert.False(t, objectid.IsID("alice"))
}

func TestJSON(t *testing.T) {
	type holder struct {
		From objectid.ID `json:"from"`
	}
	buffer, err := json.Marshal(holder{From: objectid.Account(17)})
	assert.Nil(t, err)
	assert.Equal(t, `{"from":"1.2.17"}`, string(buffer))

	var h holder
	err = json.Unmarshal([]byte(`{"from":"1.3.5"}`), &h)
	assert.Nil(t, err)
	assert.Equal(t, objectid.Asset(5), h.From)

	err = json.Unmarshal([]byte(`{"from":"bad"}`), &h)
	assert.True(t, fault.IsErrInvalid(err), "bad id error: %v", err)
}
