// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package objectid

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/deex/fault"
)

// object spaces
const (
	ProtocolSpace       = 1
	ImplementationSpace = 2
)

// protocol space object types
const (
	AccountType            = 2
	AssetType              = 3
	ForceSettlementType    = 4
	CommitteeMemberType    = 5
	WitnessType            = 6
	LimitOrderType         = 7
	CallOrderType          = 8
	CustomType             = 9
	ProposalType           = 10
	OperationHistoryType   = 11
	WithdrawPermissionType = 12
	VestingBalanceType     = 13
	WorkerType             = 14
	BalanceType            = 15
	HtlcType               = 16
)

// implementation space object types
const (
	GlobalPropertyType        = 0
	DynamicGlobalPropertyType = 1
	AssetDynamicDataType      = 3
	AssetBitassetDataType     = 4
)

// ID - chain object identifier: space.type.instance
type ID struct {
	Space    uint8
	Type     uint8
	Instance uint64
}

// well known objects
var (
	CommitteeAccount      = ID{ProtocolSpace, AccountType, 0}
	NullAccount           = ID{ProtocolSpace, AccountType, 3}
	CoreAsset             = ID{ProtocolSpace, AssetType, 0}
	GlobalProperties      = ID{ImplementationSpace, GlobalPropertyType, 0}
	DynamicGlobalProperty = ID{ImplementationSpace, DynamicGlobalPropertyType, 0}
)

// New - create an identifier
func New(space uint8, objectType uint8, instance uint64) ID {
	return ID{Space: space, Type: objectType, Instance: instance}
}

// Account - shorthand for a protocol space account id
func Account(instance uint64) ID {
	return ID{ProtocolSpace, AccountType, instance}
}

// Asset - shorthand for a protocol space asset id
func Asset(instance uint64) ID {
	return ID{ProtocolSpace, AssetType, instance}
}

// Parse - convert "s.t.i" to an identifier
func Parse(s string) (ID, error) {
	parts := strings.Split(s, ".")
	if 3 != len(parts) {
		return ID{}, fault.ErrInvalidObjectID
	}
	space, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err || 0 == space {
		return ID{}, fault.ErrInvalidObjectID
	}
	objectType, err := strconv.ParseUint(parts[1], 10, 8)
	if nil != err {
		return ID{}, fault.ErrInvalidObjectID
	}
	instance, err := strconv.ParseUint(parts[2], 10, 64)
	if nil != err {
		return ID{}, fault.ErrInvalidObjectID
	}
	return ID{uint8(space), uint8(objectType), instance}, nil
}

// IsID - true if s has the form of an object identifier
func IsID(s string) bool {
	_, err := Parse(s)
	return nil == err
}

// Is - check space and type
func (id ID) Is(space uint8, objectType uint8) bool {
	return id.Space == space && id.Type == objectType
}

func (id ID) IsAccount() bool { return id.Is(ProtocolSpace, AccountType) }
func (id ID) IsAsset() bool   { return id.Is(ProtocolSpace, AssetType) }

// IsZero - the zero value is not a valid identifier
func (id ID) IsZero() bool {
	return 0 == id.Space
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id.Space), 10) + "." +
		strconv.FormatUint(uint64(id.Type), 10) + "." +
		strconv.FormatUint(id.Instance, 10)
}

// MarshalText - JSON form is the dotted string
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - parse the dotted string
func (id *ID) UnmarshalText(s []byte) error {
	n, err := Parse(string(s))
	if nil != err {
		return err
	}
	*id = n
	return nil
}
