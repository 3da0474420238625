// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstream

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the syntax errors reported by a Parser.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedToken  ErrorKind = iota + 1 // character not allowed in the current state
	DuplicateKey                          // key already present in the current object
	UnbalancedCloser                      // "}" with no matching open object
	InvalidLiteral                        // bare value is not true, false, null, or an integer
)

// Sentinel errors for each ErrorKind. A *SyntaxError unwraps to the sentinel
// for its kind, so callers may test errors.Is(err, jstream.ErrDuplicateKey).
var (
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrUnbalancedCloser = errors.New("unbalanced closer")
	ErrInvalidLiteral   = errors.New("invalid literal")
)

var kindErr = [...]error{
	UnexpectedToken:  ErrUnexpectedToken,
	DuplicateKey:     ErrDuplicateKey,
	UnbalancedCloser: ErrUnbalancedCloser,
	InvalidLiteral:   ErrInvalidLiteral,
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindErr) || kindErr[k] == nil {
		return "unknown error"
	}
	return kindErr[k].Error()
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Location LineCol // where the offending character occurred
	Offset   int     // byte offset of the offending character, 0-based
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. It returns the sentinel error for s.Kind.
func (s *SyntaxError) Unwrap() error {
	if int(s.Kind) >= len(kindErr) {
		return nil
	}
	return kindErr[s.Kind]
}
