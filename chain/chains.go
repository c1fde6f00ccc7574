// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/hex"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

// names of all chains
const (
	Deex    = "deex"
	Testing = "testing"
	Local   = "local"
)

// Parameters - fixed values for one chain
type Parameters struct {
	Name          string
	ChainID       string // hex, 32 bytes
	CoreSymbol    string
	CoreAsset     objectid.ID
	CorePrecision int32
	AddressPrefix string
	IsTesting     bool
}

var chains = map[string]Parameters{
	Deex: {
		Name:          Deex,
		ChainID:       "7c1c72eb738b3ff1870350f85daca27e2d0f5dd25af27df7475fbd92815e421e",
		CoreSymbol:    "DX",
		CoreAsset:     objectid.CoreAsset,
		CorePrecision: 5,
		AddressPrefix: "DX",
	},
	Testing: {
		Name:          Testing,
		ChainID:       "39f5e2ede1f8bc1a3a54a7914414e3779e33193f1f5693510e73cb7a87617447",
		CoreSymbol:    "TEST",
		CoreAsset:     objectid.CoreAsset,
		CorePrecision: 5,
		AddressPrefix: "TEST",
		IsTesting:     true,
	},
	Local: {
		Name:          Local,
		ChainID:       "0000000000000000000000000000000000000000000000000000000000000000",
		CoreSymbol:    "LOCAL",
		CoreAsset:     objectid.CoreAsset,
		CorePrecision: 5,
		AddressPrefix: "LOCAL",
		IsTesting:     true,
	},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := chains[name]
	return ok
}

// Get - parameters for a chain name
func Get(name string) (Parameters, error) {
	p, ok := chains[name]
	if !ok {
		return Parameters{}, fault.ErrInvalidChain
	}
	return p, nil
}

// ChainIDBytes - binary chain id, prefixed to every signed digest
func (p Parameters) ChainIDBytes() []byte {
	b, err := hex.DecodeString(p.ChainID)
	if nil != err {
		panic("chain: invalid chain id for: " + p.Name)
	}
	return b
}
