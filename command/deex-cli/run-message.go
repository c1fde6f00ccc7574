// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/deex/message"
	"github.com/bitmark-inc/deex/objects"
)

type verified struct {
	Account   string `json:"account"`
	MemoKey   string `json:"memo_key"`
	Block     uint32 `json:"block"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// check the signature against the memo key in the meta only, offline
// there is no account to compare the key with
func verifyMessage(r io.Reader) (*verified, error) {
	framed, err := ioutil.ReadAll(r)
	if nil != err {
		return nil, err
	}
	s, err := message.Parse(string(framed))
	if nil != err {
		return nil, err
	}
	if err := s.Verify(); nil != err {
		return nil, err
	}
	return &verified{
		Account:   s.Meta.Account,
		MemoKey:   s.Meta.MemoKey.String(),
		Block:     s.Meta.Block,
		Timestamp: s.Meta.Timestamp.Format(objects.TimeFormat),
		Text:      s.Text,
	}, nil
}

func runVerifyMessage(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.Args().First()
	if "" == name {
		return ErrMessageFileRequired
	}

	var r io.Reader = os.Stdin
	if "-" != name {
		f, err := os.Open(name)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}

	v, err := verifyMessage(r)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signature valid for memo key: %s\n", v.MemoKey)
	}
	return printJson(m.w, v)
}
