// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/deex/configuration"
)

type metadata struct {
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "deex-cli"
	app.Usage = "offline keys, permissions and signing"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (required for sign)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed and its key pair, nothing is stored",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "test, t",
					Usage: " key for a test network",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "flags",
			Usage:     "show the flags set in a permission or flag mask",
			ArgsUsage: "*MASK\n   (* = required)",
			Action:    runFlags,
		},
		{
			Name:      "force",
			Usage:     "check a request against permissions and apply it to flags",
			ArgsUsage: "*NAME=true|false...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "permissions, p",
					Value: "0",
					Usage: "*issuer permissions `MASK`",
				},
				cli.StringFlag{
					Name:  "flags, f",
					Value: "0",
					Usage: "*current flags `MASK`",
				},
			},
			Action: runForce,
		},
		{
			Name:      "sign",
			Usage:     "sign operations with the configured keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operations, o",
					Value: "",
					Usage: "*JSON `FILE` holding one operation or a list of them",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " signing account `ID` [default account]",
				},
				cli.StringFlag{
					Name:  "level, l",
					Value: "active",
					Usage: " authority `LEVEL` [other|active|owner]",
				},
				cli.UintFlag{
					Name:  "ref-block-num, n",
					Value: 0,
					Usage: " reference block `NUMBER`",
				},
				cli.StringFlag{
					Name:  "ref-block-id, r",
					Value: "",
					Usage: " reference block `ID` (hex)",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify-message",
			Usage:     "check the signature of a signed message against its memo key",
			ArgsUsage: "*FILE\n   (* = required, - = stdin)",
			Action:    runVerifyMessage,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration when one is given
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		file := c.GlobalString("config")
		if "" == file {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.config = config
		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok && nil != m.config {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
