// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/authority"
	"github.com/bitmark-inc/deex/chain"
	"github.com/bitmark-inc/deex/configuration"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/keypair"
	"github.com/bitmark-inc/deex/objectid"
	"github.com/bitmark-inc/deex/operation"
)

const configTemplate = `
local M = {}

M.data_directory = "."
M.chain = "%s"
M.default_account = "alice"
M.nobroadcast = true

M.cache = {
    default_expiration = 60,
    sweep_interval = 5,
}

M.proposal = {
    review = 3600,
}

M.fees = {
    asset = "1.3.0",
    default = 20,
    kinds = {
        transfer = 5,
    },
}

M.keys = {
    {
        account = "1.2.17",
        level = "active",
        private_key = "%s",
    },
}

M.fetch_rate = {
    limit = 50,
    burst = 5,
}

M.logging = {
    directory = "log",
    file = "deex.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical",
    },
}

return M
`

func writeConfig(t *testing.T, chainName string, test bool) string {
	key, err := keypair.Generate(test, bytes.NewReader(bytes.Repeat([]byte{9}, 64)))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	fileName := filepath.Join(testingDirName, "deex.conf")
	data := fmt.Sprintf(configTemplate, chainName, key.String())
	if err := ioutil.WriteFile(fileName, []byte(data), 0600); nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return fileName
}

func TestDefault(t *testing.T) {
	c := configuration.Default()
	assert.Equal(t, chain.Deex, c.Chain)
	assert.Equal(t, 10*time.Second, c.CacheExpiration())
	assert.Equal(t, time.Duration(0), c.CacheSweepInterval())
	assert.Equal(t, 30*time.Second, c.TransactionExpiration())
	assert.Equal(t, 48*time.Hour, c.ProposalExpiration())
	assert.Equal(t, time.Duration(0), c.ProposalReview())

	limit, burst := c.FetchLimit()
	assert.Equal(t, rate.Inf, limit)
	assert.Equal(t, 1, burst)
}

func TestParseConfigurationString(t *testing.T) {
	c := configuration.Default()
	err := configuration.ParseConfigurationString(`return { chain = "local", transaction = { expiration = 90 } }`, c)
	assert.Nil(t, err)
	assert.Equal(t, chain.Local, c.Chain)
	assert.Equal(t, 90*time.Second, c.TransactionExpiration())
	assert.Equal(t, 10*time.Second, c.CacheExpiration(), "defaults survive")

	err = configuration.ParseConfigurationString(`x = 1`, c)
	assert.NotNil(t, err, "no table returned")

	err = configuration.ParseConfigurationString(`return {`, c)
	assert.NotNil(t, err, "syntax error")
}

func TestGetConfiguration(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fileName := writeConfig(t, chain.Testing, true)

	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err) {
		return
	}

	dir, _ := filepath.Abs(testingDirName)
	assert.Equal(t, dir, c.DataDirectory)
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory)
	assert.Equal(t, chain.Testing, c.Chain)
	assert.Equal(t, "alice", c.DefaultAccount)
	assert.True(t, c.NoBroadcast)
	assert.False(t, c.Unsigned)
	assert.Equal(t, time.Minute, c.CacheExpiration())
	assert.Equal(t, 5*time.Second, c.CacheSweepInterval())
	assert.Equal(t, time.Hour, c.ProposalReview())
	assert.Equal(t, 48*time.Hour, c.ProposalExpiration(), "default kept")

	limit, burst := c.FetchLimit()
	assert.Equal(t, rate.Limit(50), limit)
	assert.Equal(t, 5, burst)

	fees, err := c.FeeSchedule()
	assert.Nil(t, err)
	op, err := operation.New(operation.Transfer, map[string]interface{}{
		"from":   objectid.Account(17),
		"to":     objectid.Account(18),
		"amount": amount.New(1, objectid.CoreAsset),
	})
	assert.Nil(t, err)
	charged, err := fees.ComputeFee(op)
	assert.Nil(t, err)
	assert.Equal(t, amount.New(5, objectid.CoreAsset), charged)

	keys, err := c.KeyStore()
	assert.Nil(t, err)
	assert.Equal(t, 1, keys.Count())
	_, err = keys.FindKey(objectid.Account(17), authority.Active)
	assert.Nil(t, err)
}

func TestKeyForWrongNetwork(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fileName := writeConfig(t, chain.Testing, false)

	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err) {
		return
	}
	_, err = c.KeyStore()
	assert.Equal(t, fault.ErrWrongNetworkForKey, errors.Cause(err))
}

func TestUnsupportedChain(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fileName := writeConfig(t, "nosuchchain", true)

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err)

	_, err = configuration.GetConfiguration(filepath.Join(testingDirName, "missing.conf"))
	assert.NotNil(t, err)
}

func TestBadFees(t *testing.T) {
	c := configuration.Default()
	c.Fees.Asset = "1.2.3"
	_, err := c.FeeSchedule()
	assert.Equal(t, fault.ErrInvalidObjectID, errors.Cause(err))

	c = configuration.Default()
	c.Fees.Kinds["no_such_operation"] = 1
	_, err = c.FeeSchedule()
	assert.Equal(t, fault.ErrUnknownOperation, errors.Cause(err))
}
