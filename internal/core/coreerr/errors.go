/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package coreerr defines the engine's error taxonomy (spec.md §7): a
// closed set of kinds, each a typed wrapper so callers can branch on
// errors.As instead of string-matching messages.
package coreerr

import "fmt"

// Kind is one of the six error categories from spec.md §7.
type Kind string

const (
	KindSchema       Kind = "SCHEMA"       // element missing/ill-typed field, unsupported type, duplicate ID, arity violation, empty label
	KindLookup       Kind = "LOOKUP"       // referenced ID does not exist
	KindStructure    Kind = "STRUCTURE"    // XML parser: no process, wrong start-event count, broken join
	KindProposal     Kind = "PROPOSAL"     // edit-proposal shape invalid
	KindTransport    Kind = "TRANSPORT"    // LLM call failed / returned non-JSON
	KindEditExhausted Kind = "EDIT_EXHAUSTED" // retry/iteration budget exceeded
)

// Error is the engine's single error type. Component and Operation are
// optional breadcrumbs for logging; they are never required for callers
// that only need errors.Is/As against Kind.
type Error struct {
	Kind      Kind
	Message   string
	Component string
	Operation string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, coreerr.New(KindSchema, "")) to match on Kind
// alone, regardless of Message/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) WithComponent(component string) *Error {
	e.Component = component
	return e
}

func (e *Error) WithOperation(operation string) *Error {
	e.Operation = operation
	return e
}

// Schema, Lookup, Structure, Proposal, Transport, and EditExhausted are
// terse constructors for the common case of a bare message.
func Schema(format string, args ...interface{}) *Error {
	return Newf(KindSchema, format, args...)
}

func Lookup(format string, args ...interface{}) *Error {
	return Newf(KindLookup, format, args...)
}

func Structure(format string, args ...interface{}) *Error {
	return Newf(KindStructure, format, args...)
}

func Proposal(format string, args ...interface{}) *Error {
	return Newf(KindProposal, format, args...)
}

func Transport(format string, args ...interface{}) *Error {
	return Newf(KindTransport, format, args...)
}

func EditExhausted(format string, args ...interface{}) *Error {
	return Newf(KindEditExhausted, format, args...)
}

// KindOf extracts the Kind from err if it (or something it wraps) is an
// *Error, and ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return "", false
}
