// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - administrative operations on a user issued asset
//
// Each function takes the current asset object, checks the change
// against the issuer permissions and returns the asset_update (or
// related) operation together with the authority level the issuer
// must sign it with.  Nothing is sent; the caller decides whether to
// append the operation to a transaction or a proposal.
package asset
