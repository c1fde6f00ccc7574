// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - ed25519 signing keys with checksummed base58 text
//
// Encoded form of a key:
//
//	varint(variant) || key bytes || sha3-256(...)[:4]
//
// where variant = algorithm<<4 | public flag | testing flag
package keypair
