// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objects"
	"github.com/bitmark-inc/deex/operation"
)

// Signed - the chain form of a transaction
type Signed struct {
	RefBlockNum    uint16                 `json:"ref_block_num"`
	RefBlockPrefix uint32                 `json:"ref_block_prefix"`
	Expiration     objects.Time           `json:"expiration"`
	Operations     []*operation.Operation `json:"operations"`
	Extensions     []interface{}          `json:"extensions"`
	Signatures     []keypair.Signature    `json:"signatures"`
}

// Result - what the network reports for an accepted transaction
type Result struct {
	ID       string `json:"id"`
	BlockNum uint32 `json:"block_num"`
	TrxNum   uint32 `json:"trx_num"`
}
