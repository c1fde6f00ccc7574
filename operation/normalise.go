// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"

	"github.com/bitmark-inc/deex/amount"
)

// normaliseMap - deep copy into the small set of types that encode the
// same way every time: string, bool, int64, uint64 (only above the
// int64 range), float64 (only non integral), []interface{} and
// map[string]interface{}
func normaliseMap(m map[string]interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(m))
	for k, v := range m {
		n, err := normalise(v)
		if nil != err {
			return nil, fmt.Errorf("field %q: %s", k, err)
		}
		result[k] = n
	}
	return result, nil
}

func normalise(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string, bool, int64:
		return x, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return normaliseUint(uint64(x)), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return normaliseUint(x), nil
	case float32:
		return normaliseFloat(float64(x)), nil
	case float64:
		return normaliseFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); nil == err {
			return i, nil
		}
		f, err := x.Float64()
		if nil != err {
			return nil, err
		}
		return normaliseFloat(f), nil
	case amount.Amount:
		return normaliseMap(x.Fields())
	case *Operation:
		// nested operation, e.g. inside proposed_ops
		return []interface{}{int64(x.kind), x.Fields()}, nil
	case map[string]interface{}:
		return normaliseMap(x)
	case []interface{}:
		return normaliseList(x)
	case []string:
		l := make([]interface{}, len(x))
		for i, s := range x {
			l[i] = s
		}
		return l, nil
	case []map[string]interface{}:
		l := make([]interface{}, len(x))
		for i, m := range x {
			n, err := normaliseMap(m)
			if nil != err {
				return nil, err
			}
			l[i] = n
		}
		return l, nil
	case encoding.TextMarshaler:
		// object ids, keys, digests
		b, err := x.MarshalText()
		if nil != err {
			return nil, err
		}
		return string(b), nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

func normaliseList(l []interface{}) ([]interface{}, error) {
	result := make([]interface{}, len(l))
	for i, v := range l {
		n, err := normalise(v)
		if nil != err {
			return nil, err
		}
		result[i] = n
	}
	return result, nil
}

func normaliseUint(u uint64) interface{} {
	if u > math.MaxInt64 {
		return u
	}
	return int64(u)
}

func normaliseFloat(f float64) interface{} {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}
