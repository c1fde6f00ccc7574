// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/permission"
)

func TestFlagTable(t *testing.T) {
	flags := permission.Flags()
	assert.Equal(t, 9, len(flags))

	all := permission.Mask(0)
	for _, f := range flags {
		assert.True(t, f.Valid(), "flag: %s", f)
		p, err := permission.ParseFlag(f.String())
		assert.Nil(t, err)
		assert.Equal(t, f, p)
		all = all.Set(f)
	}
	assert.Equal(t, permission.All, all)

	assert.False(t, permission.Flag(0x200).Valid())
	assert.Equal(t, "flag(0x3)", permission.Flag(3).String())
}

func TestParseFlagUnknown(t *testing.T) {
	_, err := permission.ParseFlag("fly")
	assert.True(t, fault.IsErrUnknownFlag(err), "error: %v", err)
	assert.Equal(t, &fault.UnknownFlagError{Name: "fly"}, err)
}

func TestTestPermissions(t *testing.T) {
	permissions := permission.Mask(0).Set(permission.WhiteList).Set(permission.ChargeMarketFee)

	tests := []struct {
		request permission.Request
		denied  string
	}{
		{permission.Request{}, ""},
		{permission.Request{permission.WhiteList: true}, ""},
		{permission.Request{permission.WhiteList: true, permission.ChargeMarketFee: true}, ""},
		{permission.Request{permission.OverrideAuthority: true}, "override_authority"},
		{permission.Request{permission.OverrideAuthority: false}, ""},
		{permission.Request{permission.GlobalSettle: true, permission.TransferRestricted: true}, "transfer_restricted"},
	}

	for i, item := range tests {
		err := permission.TestPermissions(permissions, item.request)
		if "" == item.denied {
			assert.Nil(t, err, "%d: unexpected error", i)
			assert.True(t, permission.Allowed(permissions, item.request), "%d: allowed", i)
			continue
		}
		assert.True(t, fault.IsErrPermissionDenied(err), "%d: error: %v", i, err)
		assert.Equal(t, &fault.PermissionDeniedError{Flag: item.denied}, err, "%d", i)
		assert.False(t, permission.Allowed(permissions, item.request), "%d: allowed", i)
	}
}

// a single requested flag passes exactly when its bit is set
func TestPermissionsMatchBits(t *testing.T) {
	for m := permission.Mask(0); m <= permission.All; m += 1 {
		for _, f := range permission.Flags() {
			err := permission.TestPermissions(m, permission.Request{f: true})
			assert.Equal(t, m.Has(f), nil == err, "mask: 0x%x flag: %s", uint16(m), f)
		}
	}
}

func TestUnknownFlagValue(t *testing.T) {
	err := permission.TestPermissions(permission.All, permission.Request{permission.Flag(0x400): true})
	assert.True(t, fault.IsErrUnknownFlag(err), "error: %v", err)

	_, err = permission.ForceFlag(0, permission.Request{permission.Flag(0x400): false})
	assert.True(t, fault.IsErrUnknownFlag(err), "error: %v", err)
}

func TestForceFlag(t *testing.T) {
	flags := permission.Mask(0).Set(permission.DisableConfidential)

	set, err := permission.ForceFlag(flags, permission.Request{permission.WhiteList: true, permission.ChargeMarketFee: true})
	assert.Nil(t, err)
	assert.True(t, set.Has(permission.WhiteList))
	assert.True(t, set.Has(permission.ChargeMarketFee))
	assert.True(t, set.Has(permission.DisableConfidential), "untouched bit must remain")

	cleared, err := permission.ForceFlag(set, permission.Request{permission.WhiteList: false, permission.ChargeMarketFee: false})
	assert.Nil(t, err)
	assert.Equal(t, flags, cleared, "set then clear must round trip")
}

func TestDict(t *testing.T) {
	m := permission.Mask(0).Set(permission.WitnessFedAsset).Set(permission.WhiteList)

	d := permission.ToDict(m)
	assert.Equal(t, 9, len(d))
	assert.True(t, d["witness_fed_asset"])
	assert.True(t, d["white_list"])
	assert.False(t, d["global_settle"])

	back, err := permission.FromDict(d)
	assert.Nil(t, err)
	assert.Equal(t, m, back)

	assert.Equal(t, []string{"white_list", "witness_fed_asset"}, m.Names())

	_, err = permission.FromDict(map[string]bool{"white_list": true, "zzz": true, "aaa": false})
	assert.Equal(t, &fault.UnknownFlagError{Name: "aaa"}, err, "first unknown in name order")
}
