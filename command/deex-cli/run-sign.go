// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/instance"
	"github.com/bitmark-inc/deex/operation"
)

// readOperations - a single [kind, fields] or a list of them
func readOperations(data []byte) ([]*operation.Operation, error) {
	var ops []*operation.Operation
	if err := json.Unmarshal(data, &ops); nil != err {
		var op operation.Operation
		if err := json.Unmarshal(data, &op); nil != err {
			return nil, err
		}
		ops = []*operation.Operation{&op}
	}
	if 0 == len(ops) {
		return nil, ErrNoOperations
	}
	return ops, nil
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return ErrConfigurationRequired
	}

	data, err := ioutil.ReadFile(c.String("operations"))
	if nil != err {
		return err
	}
	ops, err := readOperations(bytes.TrimSpace(data))
	if nil != err {
		return err
	}
	level, err := authority.ParseLevel(c.String("level"))
	if nil != err {
		return err
	}

	i, err := instance.New(m.config, instance.Collaborators{
		Fetcher: offline{},
		Network: offline{},
	})
	if nil != err {
		return err
	}
	defer i.Close()

	tx := i.Tx()
	if blockID := c.String("ref-block-id"); "" != blockID {
		if err := tx.SetReference(uint32(c.Uint("ref-block-num")), blockID); nil != err {
			return err
		}
	}

	ctx := context.Background()
	target := instance.ToTransaction(tx)
	for _, op := range ops {
		if _, err := i.FinalizeOp(ctx, op, c.String("account"), level, target); nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d\n", len(ops))
		fmt.Fprintf(m.e, "required: %v\n", tx.RequiredAuthority().List())
	}

	if m.config.Unsigned {
		data, err := tx.JSON()
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s\n", data)
		return nil
	}

	if err := tx.Sign(); nil != err {
		return err
	}
	s, err := tx.Signed()
	if nil != err {
		return err
	}
	return printJson(m.w, s)
}
