// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/deex/keypair"
)

type generated struct {
	Seed       string `json:"seed"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	test := c.Bool("test")
	seed, err := keypair.NewSeed(test)
	if nil != err {
		return err
	}
	key, err := keypair.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "test: %t\n", test)
	}

	return printJson(m.w, generated{
		Seed:       seed,
		PrivateKey: key.String(),
		PublicKey:  key.PublicKey().String(),
	})
}
