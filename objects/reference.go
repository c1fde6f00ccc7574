// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objects

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/deex/fault"
)

// ReferenceBlock - TaPoS values a transaction uses to bind itself to
// the head block: the low 16 bits of the block number and four bytes
// of the block id
func ReferenceBlock(blockNumber uint32, blockID string) (uint16, uint32, error) {
	id, err := hex.DecodeString(blockID)
	if nil != err || len(id) < 8 {
		return 0, 0, fault.ErrInvalidBlockID
	}
	return uint16(blockNumber & 0xffff), binary.LittleEndian.Uint32(id[4:8]), nil
}

// ReferenceBlock - reference values from the current head block
func (p *DynamicGlobalProperties) ReferenceBlock() (uint16, uint32, error) {
	return ReferenceBlock(p.HeadBlockNumber, p.HeadBlockID)
}
