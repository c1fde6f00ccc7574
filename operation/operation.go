// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding/json"
	"sort"

	"github.com/bitmark-inc/deex/amount"
	"github.com/bitmark-inc/deex/fault"
	"github.com/bitmark-inc/deex/objectid"
)

// FeeField - name of the optional fee field present in every operation
const FeeField = "fee"

// Operation - one kind of ledger action and its parameters
//
// an Operation is never modified after New returns, methods that
// change something return a new Operation
type Operation struct {
	kind   Kind
	fields map[string]interface{}
}

// New - validate and take a private copy of the fields
func New(kind Kind, fields map[string]interface{}) (*Operation, error) {
	i, ok := kinds[kind]
	if !ok {
		return nil, &fault.ValidationError{Kind: kind.String(), Reason: "unknown operation kind"}
	}

	copied, err := normaliseMap(fields)
	if nil != err {
		return nil, &fault.ValidationError{Kind: i.name, Reason: err.Error()}
	}

	for _, f := range i.fields {
		v, ok := copied[f.name]
		if !ok || nil == v {
			return nil, &fault.ValidationError{Kind: i.name, Field: f.name, Reason: "missing"}
		}
		if reason := checkField(f.vtype, v); "" != reason {
			return nil, &fault.ValidationError{Kind: i.name, Field: f.name, Reason: reason}
		}
	}

	if fee, ok := copied[FeeField]; ok && nil != fee {
		if _, ok := amount.FromFields(fee); !ok {
			return nil, &fault.ValidationError{Kind: i.name, Field: FeeField, Reason: "not an amount"}
		}
	}

	return &Operation{kind: kind, fields: copied}, nil
}

// FromName - New using the chain name of the kind
func FromName(name string, fields map[string]interface{}) (*Operation, error) {
	kind, err := KindFromName(name)
	if nil != err {
		return nil, &fault.ValidationError{Kind: name, Reason: "unknown operation kind"}
	}
	return New(kind, fields)
}

func checkField(vtype fieldType, v interface{}) string {
	switch vtype {
	case accountField:
		s, ok := v.(string)
		if !ok {
			return "not an account id"
		}
		id, err := objectid.Parse(s)
		if nil != err || !id.IsAccount() {
			return "not an account id"
		}
	case assetField:
		s, ok := v.(string)
		if !ok {
			return "not an asset id"
		}
		id, err := objectid.Parse(s)
		if nil != err || !id.IsAsset() {
			return "not an asset id"
		}
	case amountField:
		if _, ok := amount.FromFields(v); !ok {
			return "not an amount"
		}
	case listField:
		if _, ok := v.([]interface{}); !ok {
			return "not a list"
		}
	}
	return ""
}

// Kind - the operation id
func (o *Operation) Kind() Kind {
	return o.kind
}

// Name - chain name of the kind
func (o *Operation) Name() string {
	return o.kind.String()
}

// Field - a single parameter, nil if absent
//
// composite values are shared with the operation and must not be
// modified
func (o *Operation) Field(name string) (interface{}, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// Fields - copy of all parameters
func (o *Operation) Fields() map[string]interface{} {
	c, _ := normaliseMap(o.fields)
	return c
}

// FieldNames - sorted parameter names
func (o *Operation) FieldNames() []string {
	names := make([]string, 0, len(o.fields))
	for name := range o.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fee - the fee if one is set and non zero
func (o *Operation) Fee() (amount.Amount, bool) {
	v, ok := o.fields[FeeField]
	if !ok {
		return amount.Amount{}, false
	}
	a, ok := amount.FromFields(v)
	if !ok || a.IsZero() {
		return amount.Amount{}, false
	}
	return a, true
}

// WithFee - copy with the fee replaced
func (o *Operation) WithFee(fee amount.Amount) *Operation {
	c := o.Fields()
	c[FeeField] = fee.Fields()
	return &Operation{kind: o.kind, fields: c}
}

// Author - the account that pays the fee
func (o *Operation) Author() objectid.ID {
	s, _ := o.fields[kinds[o.kind].author].(string)
	id, _ := objectid.Parse(s)
	return id
}

// MarshalJSON - the chain form: [kind, {fields}]
func (o *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{uint16(o.kind), o.fields})
}

// UnmarshalJSON - parse and validate the chain form
func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return fault.ErrCannotDecodeOperation
	}
	if 2 != len(raw) {
		return fault.ErrCannotDecodeOperation
	}
	var kind Kind
	if err := json.Unmarshal(raw[0], &kind); nil != err {
		return fault.ErrCannotDecodeOperation
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw[1], &fields); nil != err {
		return fault.ErrCannotDecodeOperation
	}
	op, err := New(kind, fields)
	if nil != err {
		return err
	}
	*o = *op
	return nil
}
