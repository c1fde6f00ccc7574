// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/deex/fault"
)

// PrivateKey - signing half of a key pair
type PrivateKey struct {
	Test bool
	Key  ed25519.PrivateKey
}

// Generate - new random key
//
// rand == nil uses crypto/rand
func Generate(test bool, rand io.Reader) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{Test: test, Key: key}, nil
}

// PrivateKeyFromBase58 - parse the text form of a private key
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	key, test, err := decode(s, false)
	if nil != err {
		return nil, err
	}
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{Test: test, Key: ed25519.PrivateKey(key)}, nil
}

// PublicKey - the matching public key
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		Test: k.Test,
		Key:  k.Key.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (k *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(k.Key, message)
}

func (k *PrivateKey) String() string {
	return encode(k.Key, false, k.Test)
}

// MarshalText - base58 JSON form
func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - parse base58
func (k *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = *p
	return nil
}
