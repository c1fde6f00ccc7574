// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore - private keys indexed by account and authority level
package keystore

import (
	"sync"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objectid"
)

// Memory - keys held only in process memory
type Memory struct {
	sync.RWMutex
	keys map[objectid.ID]map[authority.Level]*keypair.PrivateKey
}

// New - empty store
func New() *Memory {
	return &Memory{
		keys: make(map[objectid.ID]map[authority.Level]*keypair.PrivateKey),
	}
}

// Add - register the key an account signs with at a level
func (m *Memory) Add(account objectid.ID, level authority.Level, key *keypair.PrivateKey) error {
	if !account.IsAccount() {
		return fault.ErrInvalidObjectID
	}
	if level < authority.Other || level > authority.Owner {
		return fault.ErrInvalidAuthorityLevel
	}
	if nil == key {
		return fault.ErrInvalidPrivateKey
	}

	m.Lock()
	defer m.Unlock()

	levels, ok := m.keys[account]
	if !ok {
		levels = make(map[authority.Level]*keypair.PrivateKey)
		m.keys[account] = levels
	}
	levels[level] = key
	return nil
}

// Remove - forget all keys of an account
func (m *Memory) Remove(account objectid.ID) {
	m.Lock()
	delete(m.keys, account)
	m.Unlock()
}

// FindKey - a key that can sign for account at level
//
// the exact level is preferred, otherwise the least strict level
// that satisfies it
func (m *Memory) FindKey(account objectid.ID, level authority.Level) (*keypair.PrivateKey, error) {
	m.RLock()
	defer m.RUnlock()

	levels := m.keys[account]
	for l := level; l <= authority.Owner; l += 1 {
		if key, ok := levels[l]; ok {
			return key, nil
		}
	}
	return nil, fault.ErrKeyNotFound
}

// FindPublicKey - the registered private key of a public key,
// whatever account and level it was added under
func (m *Memory) FindPublicKey(public *keypair.PublicKey) (*keypair.PrivateKey, error) {
	if nil == public {
		return nil, fault.ErrKeyNotFound
	}

	m.RLock()
	defer m.RUnlock()

	for _, levels := range m.keys {
		for _, key := range levels {
			if public.Equal(key.PublicKey()) {
				return key, nil
			}
		}
	}
	return nil, fault.ErrKeyNotFound
}

// Count - number of registered keys
func (m *Memory) Count() int {
	m.RLock()
	defer m.RUnlock()

	n := 0
	for _, levels := range m.keys {
		n += len(levels)
	}
	return n
}
