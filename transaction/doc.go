// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - stage operations, wrap them in proposals,
// then resolve keys, sign and broadcast
//
// Builder states:
//
//	Empty -> Staged -> AuthorityResolved -> Signed -> Broadcast
//
// appending to a signed builder drops its signatures and returns it to
// Staged; a broadcast builder accepts nothing more until Clear.
//
// Buffers, proposals and builders have a single owner and are not
// safe for concurrent use.
package transaction
