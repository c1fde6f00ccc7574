// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/deex/fault"
)

// seed layout: header || network || secret || checksum
var (
	seedHeader = []byte{0x5a, 0xfe, 0x01}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedSecretLength = 32
	seedLength       = 3 + 1 + seedSecretLength + checksumLength
)

// NewSeed - random seed in base58
func NewSeed(test bool) (string, error) {
	secret := make([]byte, seedSecretLength)
	if _, err := rand.Read(secret); nil != err {
		return "", err
	}
	return seedFromSecret(secret, test), nil
}

func seedFromSecret(secret []byte, test bool) string {
	network := byte(0x00)
	if test {
		network = 0x01
	}
	seed := append(append(append([]byte{}, seedHeader...), network), secret...)
	checksum := sha3.Sum256(seed)
	return base58.Encode(append(seed, checksum[:checksumLength]...))
}

// PrivateKeyFromSeed - deterministic key from a base58 seed
func PrivateKeyFromSeed(s string) (*PrivateKey, error) {
	seed, err := base58.Decode(s)
	if nil != err || seedLength != len(seed) {
		return nil, fault.ErrInvalidSeed
	}

	checksumStart := seedLength - checksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	if !bytes.Equal(seedHeader, seed[:len(seedHeader)]) {
		return nil, fault.ErrInvalidSeed
	}

	test := 0x01 == seed[len(seedHeader)]

	var secret [seedSecretLength]byte
	copy(secret[:], seed[len(seedHeader)+1:checksumStart])

	// 16 byte index + 16 byte poly1305 tag == ed25519.SeedSize
	edSeed := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &secret)
	key := ed25519.NewKeyFromSeed(edSeed)

	return &PrivateKey{Test: test, Key: key}, nil
}
