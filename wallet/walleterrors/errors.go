package walleterrors

import (
	"errors"
	"fmt"
)

var (
	ErrLocked             = errors.New("the address is locked")
	ErrNotFind            = errors.New("not found the given address in any keystore file")
	ErrInvalidPrikey      = errors.New("invalid prikey")
	ErrDecryptKey         = errors.New("could not decrypt key with given password")
	ErrStorageUnavailable = errors.New("storage is not available")
)

// Kind is a stable category for programmatic error handling.
// Callers should branch on Kind rather than matching error strings.
type Kind string

const (
	KindValidation           Kind = "Validation"
	KindUnsupportedAlgorithm Kind = "UnsupportedAlgorithm"
	KindIntegrity            Kind = "Integrity"
	KindCodec                Kind = "Codec"
	KindInvalidSignature     Kind = "InvalidSignature"
	KindBatchDecryption      Kind = "BatchDecryption"
)

// Error is the structured error returned by the keystore, signer and wallet packages.
//
// Index is only meaningful for KindBatchDecryption, where it is the position of
// the record that failed.
type Error struct {
	Kind    Kind
	Message string
	Index   int
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil && e.Kind != KindIntegrity {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func Validation(format string, args ...interface{}) error {
	return Newf(KindValidation, format, args...)
}

func UnsupportedAlgorithm(format string, args ...interface{}) error {
	return Newf(KindUnsupportedAlgorithm, format, args...)
}

func Codec(msg string, cause error) error {
	return Wrap(KindCodec, msg, cause)
}

func InvalidSignature(msg string, cause error) error {
	return Wrap(KindInvalidSignature, msg, cause)
}

// Integrity never carries the cause in its message: wrong password and
// tampered data must read the same.
func Integrity() error {
	return &Error{Kind: KindIntegrity, Message: ErrDecryptKey.Error(), Cause: ErrDecryptKey}
}

func BatchDecryption(index int, cause error) error {
	return &Error{
		Kind:    KindBatchDecryption,
		Message: fmt.Sprintf("couldn't decrypt accounts at record %d, password wrong?", index),
		Index:   index,
		Cause:   cause,
	}
}

// IsKind reports whether any *Error in err's chain has the given Kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// KindOf returns the outermost Kind in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}
