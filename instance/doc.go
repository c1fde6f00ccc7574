// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instance - shared client context
//
// an Instance owns the object cache, the loader, the keys and the
// fee schedule derived from a configuration, together with a default
// transaction and a default proposal that operations are collected in
// until they are signed and broadcast
//
// create with New, release with Close; an Instance is passed by
// reference and is safe for use by one caller at a time except for
// Reload which may run concurrently from a configuration watcher
package instance
