// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyBroadcast      = ProcessError("transaction already broadcast")
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrAmountTooLarge        = InvalidError("amount too large")
	ErrCannotDecodeOperation = InvalidError("cannot decode operation")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrEmptyProposal         = InvalidError("proposal has no operations")
	ErrEmptyTransaction      = InvalidError("transaction has no operations")
	ErrFeeScheduleMissing    = ProcessError("fee schedule is missing")
	ErrInvalidAuthorityLevel = InvalidError("invalid authority level")
	ErrInvalidBlockID        = InvalidError("invalid block id")
	ErrInvalidChain          = InvalidError("invalid chain")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidKeyLength      = InvalidError("invalid key length")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidMarketFee      = InvalidError("market fee percent must be within (0, 100]")
	ErrInvalidMemo           = InvalidError("invalid memo")
	ErrInvalidMessage        = InvalidError("invalid signed message")
	ErrInvalidObjectID       = InvalidError("invalid object id")
	ErrInvalidPrivateKey     = InvalidError("invalid private key")
	ErrInvalidPublicKey      = InvalidError("invalid public key")
	ErrInvalidSeed           = InvalidError("invalid seed")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMemoKeyMismatch       = InvalidError("memo key does not match account")
	ErrNotBitAsset           = InvalidError("asset is not a market pegged asset")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotSigned             = ProcessError("transaction is not signed")
	ErrObjectNotFound        = NotFoundError("object not found")
	ErrRateLimiting          = InvalidError("rate limiting")
	ErrSignatureStale        = ProcessError("signatures do not cover current content")
	ErrUnknownOperation      = InvalidError("unknown operation")
	ErrWrongNetworkForKey    = InvalidError("wrong network for key")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// ValidationError - an operation was rejected at append time
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if "" == e.Field {
		return fmt.Sprintf("invalid %s operation: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s operation: field %q: %s", e.Kind, e.Field, e.Reason)
}

// UnknownFlagError - a permission or flag name outside the fixed table
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %q", e.Name)
}

// PermissionDeniedError - a flag was requested that the permissions do not allow
type PermissionDeniedError struct {
	Flag string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied for flag: %q", e.Flag)
}

// MissingAuthorityKeyError - no key is available for a required signer
type MissingAuthorityKeyError struct {
	Account string
	Level   string
}

func (e *MissingAuthorityKeyError) Error() string {
	return fmt.Sprintf("missing %s key for account: %s", e.Level, e.Account)
}

// NetworkError - failure reported by a network collaborator
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network %s: %s", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }

// IsErrInvalid - any rejected input, including validation and unknown flags
func IsErrInvalid(e error) bool {
	var x InvalidError
	return errors.As(e, &x) || IsErrValidation(e)
}

// IsErrValidation - an operation or flag name was rejected
func IsErrValidation(e error) bool {
	var v *ValidationError
	var u *UnknownFlagError
	return errors.As(e, &v) || errors.As(e, &u)
}

func IsErrUnknownFlag(e error) bool {
	var u *UnknownFlagError
	return errors.As(e, &u)
}

func IsErrPermissionDenied(e error) bool {
	var p *PermissionDeniedError
	return errors.As(e, &p)
}

func IsErrMissingAuthorityKey(e error) bool {
	var m *MissingAuthorityKeyError
	return errors.As(e, &m)
}

func IsErrNetwork(e error) bool {
	var n *NetworkError
	return errors.As(e, &n)
}
