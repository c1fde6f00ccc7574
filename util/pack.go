// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Packed - a byte buffer built from varint prefixed fields
type Packed []byte

// AppendUint64 - append a varint encoded value
func (p Packed) AppendUint64(value uint64) Packed {
	return append(p, ToVarint64(value)...)
}

// AppendBytes - append a length prefixed byte slice
func (p Packed) AppendBytes(data []byte) Packed {
	p = p.AppendUint64(uint64(len(data)))
	return append(p, data...)
}

// AppendString - append a length prefixed string
func (p Packed) AppendString(s string) Packed {
	return p.AppendBytes([]byte(s))
}

// Unpack - read the next length prefixed byte slice
//
// returns the data and the remainder, or nil, nil if truncated
func (p Packed) Unpack() ([]byte, Packed) {
	length, n := FromVarint64(p)
	if 0 == n || uint64(len(p)-n) < length {
		return nil, nil
	}
	end := n + int(length)
	return p[n:end], p[end:]
}
