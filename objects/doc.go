// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package objects - typed chain objects and a cache backed loader
//
// objects arrive from a Fetcher as raw JSON and are kept decoded in
// the object cache under their id; accounts and assets are also
// cached under their name or symbol
package objects
