// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-argspec/internal/text"
	"github.com/hashicorp/go-multierror"
)

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every error returned by Parse and Notify matches it with errors.Is.
var ErrorParsing = errors.New("parsing error")

// ErrorUnknownArgument - A supplied option doesn't match any declared option.
var ErrorUnknownArgument = errors.New("unknown argument")

// ErrorMissingRequiredArgument - A positional argument, or an option declared with Required, wasn't supplied.
var ErrorMissingRequiredArgument = errors.New("missing required argument")

// ErrorValueConversion - A supplied value can't be converted to the type of its bound storage.
var ErrorValueConversion = errors.New("value conversion")

// ErrorArity - The number of positional values doesn't match the declared counts.
var ErrorArity = errors.New("arity")

// ErrorSyntax - The option parser rejected the command line for any other reason,
// for example an option missing its value or an ambiguous abbreviation.
var ErrorSyntax = errors.New("syntax")

// ParseError - Error returned by Parse and Notify.
type ParseError struct {
	Kind error  // One of the ErrorXxx kinds.
	Name string // Name of the argument involved, if known.
	Msg  string
	Err  error // Underlying cause, if any.
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is - matches ErrorParsing and the error Kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrorParsing || target == e.Kind
}

func newParseError(kind error, name string, cause error, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Kind: kind,
		Name: name,
		Msg:  fmt.Sprintf(format, a...),
		Err:  cause,
	}
}

// backendError classifies an error returned by the go-getoptions parser.
func backendError(err error) *ParseError {
	msg := err.Error()
	kind := ErrorSyntax
	if strings.HasPrefix(msg, text.BackendUnknownOption) {
		kind = ErrorUnknownArgument
	}
	return &ParseError{
		Kind: kind,
		Name: quotedName(msg),
		Msg:  msg,
		Err:  err,
	}
}

// quotedName returns the first single quoted word in a go-getoptions message.
func quotedName(msg string) string {
	_, after, ok := strings.Cut(msg, "'")
	if !ok {
		return ""
	}
	name, _, ok := strings.Cut(after, "'")
	if !ok {
		return ""
	}
	return strings.TrimLeft(name, "-")
}

func joinErrors(es []error) string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// aggregate returns nil, the single error, or every error joined.
func aggregate(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	merr := multierror.Append(nil, errs...)
	merr.ErrorFormat = joinErrors
	return merr
}
