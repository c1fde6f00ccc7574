// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - canonical binary form of operations
//
// an encoded operation is
//
//	varint(kind) || CBOR(fields)
//
// with the fields in Core Deterministic Encoding so the same operation
// always gives the same bytes
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/operation"
	"github.com/bitmark-inc/deex/util"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if nil != err {
		panic("codec: CBOR encoder initialisation failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]interface{}(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if nil != err {
		panic("codec: CBOR decoder initialisation failed: " + err.Error())
	}
}

// Marshal - deterministic CBOR of any value
func Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal - decode CBOR into v
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}

// CBOR - operation serializer
type CBOR struct{}

// Encode - canonical bytes of an operation
func (CBOR) Encode(op *operation.Operation) ([]byte, error) {
	body, err := encMode.Marshal(op.Fields())
	if nil != err {
		return nil, err
	}
	return append(util.ToVarint64(uint64(op.Kind())), body...), nil
}

// Decode - rebuild and validate an operation
func (CBOR) Decode(data []byte) (*operation.Operation, error) {
	kind, n := util.FromVarint64(data)
	if 0 == n || kind > 0xffff {
		return nil, fault.ErrCannotDecodeOperation
	}

	var fields map[string]interface{}
	if err := decMode.Unmarshal(data[n:], &fields); nil != err {
		return nil, fault.ErrCannotDecodeOperation
	}
	return operation.New(operation.Kind(kind), fields)
}
