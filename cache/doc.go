// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache - expiring store of chain objects
//
// Entries become invisible once older than their time to live, even
// if the optional background sweeper has not yet removed them.
// There is no size limit.
package cache
