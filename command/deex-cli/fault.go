// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/deex/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConfigurationRequired = fault.InvalidError("--config is required")
	ErrInvalidMask           = fault.InvalidError("invalid mask")
	ErrInvalidRequest        = fault.InvalidError("request must be NAME=true or NAME=false")
	ErrMessageFileRequired   = fault.InvalidError("message FILE is required")
	ErrNoOperations          = fault.InvalidError("no operations")
	ErrOffline               = fault.ProcessError("offline: no network")
)
