// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/util"
)

// supported key algorithms
const (
	ED25519 = 1
)

const (
	checksumLength = 4

	// bits in key variant starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4
)

// PublicKey - verification half of a key pair
type PublicKey struct {
	Test bool
	Key  ed25519.PublicKey
}

// decode variant and checksum, returning the key bytes
func decode(s string, wantPublic bool) ([]byte, bool, error) {
	buffer, err := base58.Decode(s)
	if nil != err || len(buffer) <= checksumLength {
		return nil, false, fault.ErrInvalidKeyLength
	}

	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return nil, false, fault.ErrChecksumMismatch
	}

	variant, n := util.FromVarint64(buffer[:checksumStart])
	if 0 == n {
		return nil, false, fault.ErrInvalidKeyType
	}
	if wantPublic != (publicKeyCode == variant&publicKeyCode) {
		return nil, false, fault.ErrInvalidKeyType
	}
	if ED25519 != variant>>algorithmShift {
		return nil, false, fault.ErrInvalidKeyType
	}
	return buffer[n:checksumStart], 0 != variant&testKeyCode, nil
}

// encode variant, key and checksum
func encode(key []byte, public bool, test bool) string {
	variant := uint64(ED25519 << algorithmShift)
	if public {
		variant |= publicKeyCode
	}
	if test {
		variant |= testKeyCode
	}
	buffer := append(util.ToVarint64(variant), key...)
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// PublicKeyFromBase58 - parse the text form of a public key
func PublicKeyFromBase58(s string) (*PublicKey, error) {
	key, test, err := decode(s, true)
	if nil != err {
		return nil, err
	}
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PublicKey{Test: test, Key: ed25519.PublicKey(key)}, nil
}

// Verify - check a signature of message
func (p *PublicKey) Verify(message []byte, signature Signature) bool {
	if ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(p.Key, message, signature)
}

// Equal - same network and key bytes
func (p *PublicKey) Equal(other *PublicKey) bool {
	return nil != other && p.Test == other.Test && bytes.Equal(p.Key, other.Key)
}

func (p *PublicKey) String() string {
	return encode(p.Key, true, p.Test)
}

// MarshalText - base58 JSON form
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - parse base58
func (p *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*p = *k
	return nil
}
