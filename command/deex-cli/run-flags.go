// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/deex/permission"
)

type shownMask struct {
	Mask  uint16          `json:"mask"`
	Names []string        `json:"names"`
	Flags map[string]bool `json:"flags"`
}

type forced struct {
	Permissions shownMask `json:"permissions"`
	Before      shownMask `json:"before"`
	After       shownMask `json:"after"`
}

func show(m permission.Mask) shownMask {
	return shownMask{
		Mask:  uint16(m),
		Names: m.Names(),
		Flags: permission.ToDict(m),
	}
}

// parseMask - decimal or 0x prefixed hex
func parseMask(s string) (permission.Mask, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16)
	if nil != err {
		return 0, ErrInvalidMask
	}
	return permission.Mask(n), nil
}

// parseRequest - NAME=true|false arguments
func parseRequest(args []string) (map[string]bool, error) {
	named := make(map[string]bool, len(args))
	for _, arg := range args {
		s := strings.SplitN(arg, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, ErrInvalidRequest
		}
		on, err := strconv.ParseBool(s[1])
		if nil != err {
			return nil, ErrInvalidRequest
		}
		named[s[0]] = on
	}
	return named, nil
}

func runFlags(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mask, err := parseMask(c.Args().First())
	if nil != err {
		return err
	}
	return printJson(m.w, show(mask))
}

func runForce(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	permissions, err := parseMask(c.String("permissions"))
	if nil != err {
		return err
	}
	flags, err := parseMask(c.String("flags"))
	if nil != err {
		return err
	}
	named, err := parseRequest(c.Args())
	if nil != err {
		return err
	}

	after, err := force(permissions, flags, named)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "request: %v\n", named)
	}

	return printJson(m.w, forced{
		Permissions: show(permissions),
		Before:      show(flags),
		After:       show(after),
	})
}

func force(permissions permission.Mask, flags permission.Mask, named map[string]bool) (permission.Mask, error) {
	request, err := permission.ParseRequest(named)
	if nil != err {
		return 0, err
	}
	if err := permission.TestPermissions(permissions, request); nil != err {
		return 0, err
	}
	return permission.ForceFlag(flags, request)
}
