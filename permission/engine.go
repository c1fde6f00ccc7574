// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package permission

import (
	"sort"

	"github.com/bitmark-inc/deex/fault"
)

// Request - flags to turn on (true) or off (false)
type Request map[Flag]bool

// ParseRequest - convert named flags, rejecting any unknown name
func ParseRequest(named map[string]bool) (Request, error) {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	r := make(Request, len(named))
	for _, name := range names {
		f, err := ParseFlag(name)
		if nil != err {
			return nil, err
		}
		r[f] = named[name]
	}
	return r, nil
}

// validate - fail on the first value outside the table
func (r Request) validate() error {
	for f := range r {
		if !f.Valid() {
			return &fault.UnknownFlagError{Name: f.String()}
		}
	}
	return nil
}

// TestPermissions - every flag requested true must be allowed by
// permissions
//
// flags requested false are not checked: clearing a flag never
// needs a permission bit
func TestPermissions(permissions Mask, requested Request) error {
	if err := requested.validate(); nil != err {
		return err
	}
	for _, e := range table {
		if enable, ok := requested[e.flag]; ok && enable && !permissions.Has(e.flag) {
			return &fault.PermissionDeniedError{Flag: e.name}
		}
	}
	return nil
}

// Allowed - boolean form of TestPermissions
func Allowed(permissions Mask, requested Request) bool {
	return nil == TestPermissions(permissions, requested)
}

// ForceFlag - set or clear the requested bits, leave the rest
func ForceFlag(flags Mask, requested Request) (Mask, error) {
	if err := requested.validate(); nil != err {
		return flags, err
	}
	for f, enable := range requested {
		if enable {
			flags = flags.Set(f)
		} else {
			flags = flags.Clear(f)
		}
	}
	return flags, nil
}

// ToDict - every flag name mapped to its state
func ToDict(m Mask) map[string]bool {
	result := make(map[string]bool, len(table))
	for _, e := range table {
		result[e.name] = m.Has(e.flag)
	}
	return result
}

// FromDict - inverse of ToDict
func FromDict(named map[string]bool) (Mask, error) {
	r, err := ParseRequest(named)
	if nil != err {
		return 0, err
	}
	return ForceFlag(0, r)
}
