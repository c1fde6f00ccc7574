// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"fmt"

	"github.com/bitmark-inc/deex/fault"
)

// Flag - one bit of an asset's issuer_permissions or flags field
type Flag uint16

// all known flags, table order is the order flags are examined in
const (
	ChargeMarketFee     Flag = 0x01
	WhiteList           Flag = 0x02
	OverrideAuthority   Flag = 0x04
	TransferRestricted  Flag = 0x08
	DisableForceSettle  Flag = 0x10
	GlobalSettle        Flag = 0x20
	DisableConfidential Flag = 0x40
	WitnessFedAsset     Flag = 0x80
	CommitteeFedAsset   Flag = 0x100
)

type flagInfo struct {
	flag Flag
	name string
}

var table = []flagInfo{
	{ChargeMarketFee, "charge_market_fee"},
	{WhiteList, "white_list"},
	{OverrideAuthority, "override_authority"},
	{TransferRestricted, "transfer_restricted"},
	{DisableForceSettle, "disable_force_settle"},
	{GlobalSettle, "global_settle"},
	{DisableConfidential, "disable_confidential"},
	{WitnessFedAsset, "witness_fed_asset"},
	{CommitteeFedAsset, "committee_fed_asset"},
}

// All - every flag bit
const All Mask = 0x1ff

// Flags - the flag table in order
func Flags() []Flag {
	result := make([]Flag, len(table))
	for i, f := range table {
		result[i] = f.flag
	}
	return result
}

// ParseFlag - look up a flag by name
func ParseFlag(name string) (Flag, error) {
	for _, f := range table {
		if f.name == name {
			return f.flag, nil
		}
	}
	return 0, &fault.UnknownFlagError{Name: name}
}

// Valid - a single bit from the table
func (f Flag) Valid() bool {
	for _, e := range table {
		if e.flag == f {
			return true
		}
	}
	return false
}

func (f Flag) String() string {
	for _, e := range table {
		if e.flag == f {
			return e.name
		}
	}
	return fmt.Sprintf("flag(0x%x)", uint16(f))
}

// Mask - a combination of flags
type Mask uint16

// Has - test if a flag is set
func (m Mask) Has(f Flag) bool {
	return 0 != uint16(m)&uint16(f)
}

// Set - return mask with f set
func (m Mask) Set(f Flag) Mask {
	return m | Mask(f)
}

// Clear - return mask with f cleared
func (m Mask) Clear(f Flag) Mask {
	return m &^ Mask(f)
}

// Names - the names of all set flags in table order
func (m Mask) Names() []string {
	result := make([]string, 0, len(table))
	for _, e := range table {
		if m.Has(e.flag) {
			result = append(result, e.name)
		}
	}
	return result
}
