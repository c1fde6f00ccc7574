// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/sha512"
	"math/big"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/box"

	"github.com/bitmark-inc/deex/fault"
)

// 2^255 - 19
var fieldPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

// SharedKey - secret agreed between this key and a peer's public key
//
// both sides compute the same value: a.SharedKey(B) == b.SharedKey(A)
func (k *PrivateKey) SharedKey(peer *PublicKey) (*[32]byte, error) {
	if nil == peer {
		return nil, fault.ErrInvalidPublicKey
	}
	if k.Test != peer.Test {
		return nil, fault.ErrWrongNetworkForKey
	}
	if ed25519.PrivateKeySize != len(k.Key) {
		return nil, fault.ErrInvalidKeyLength
	}

	peerKey, err := montgomery(peer.Key)
	if nil != err {
		return nil, err
	}

	// the ed25519 signing scalar, curve25519 clamps it again
	h := sha512.Sum512(k.Key.Seed())
	var private [32]byte
	copy(private[:], h[:32])

	var shared [32]byte
	box.Precompute(&shared, peerKey, &private)
	return &shared, nil
}

// montgomery - curve25519 u coordinate of an ed25519 public key
//
// u = (1 + y) / (1 - y) mod p
func montgomery(public ed25519.PublicKey) (*[32]byte, error) {
	if ed25519.PublicKeySize != len(public) {
		return nil, fault.ErrInvalidKeyLength
	}

	// little endian y with the sign bit of x cleared
	be := make([]byte, len(public))
	for i, b := range public {
		be[len(public)-1-i] = b
	}
	be[0] &= 0x7f

	y := new(big.Int).SetBytes(be)
	if y.Cmp(fieldPrime) >= 0 {
		return nil, fault.ErrInvalidPublicKey
	}

	one := big.NewInt(1)
	d := new(big.Int).Sub(one, y)
	d.Mod(d, fieldPrime)
	if 0 == d.Sign() {
		return nil, fault.ErrInvalidPublicKey
	}
	d.ModInverse(d, fieldPrime)

	u := new(big.Int).Add(one, y)
	u.Mul(u, d)
	u.Mod(u, fieldPrime)

	var out [32]byte
	b := u.Bytes()
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return &out, nil
}
