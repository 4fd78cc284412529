package codec

import (
	"errors"
	"fmt"
)

// ErrorKind 파싱 실패 원인
type ErrorKind int

const (
	InvalidAddressSyntax ErrorKind = iota + 1
	InvalidInteger
	ChecksumMismatch
)

var (
	ErrInvalidAddressSyntax = errors.New("invalid address syntax")
	ErrInvalidInteger       = errors.New("invalid integer")
	ErrChecksumMismatch     = errors.New("invalid checksum")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidAddressSyntax:
		return ErrInvalidAddressSyntax
	case InvalidInteger:
		return ErrInvalidInteger
	case ChecksumMismatch:
		return ErrChecksumMismatch
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError carries the failure kind and the parser's own description.
// Error() returns only the description.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() []error {
	errs := []error{}
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
