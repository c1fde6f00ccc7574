// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Offline client tool
//
// nothing here talks to the network: keys are generated locally,
// permission masks are decoded and forced, and transactions are
// signed with the keys of a configuration file
//
//   deex-cli generate --test
//   deex-cli flags 0x4f
//   deex-cli force --permissions=0x4f --flags=2 white_list=false charge_market_fee=true
//   deex-cli --config=deex.conf sign --operations=ops.json --account=1.2.17
//
// accounts must be given as ids since names cannot be looked up
package main
