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
	"testing"
)

func TestBackendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
		arg  string
	}{
		{"unknown", fmt.Errorf("Unknown option 'flags'"), ErrorUnknownArgument, "flags"},
		{"missing value", fmt.Errorf("Missing argument for option 'string'!"), ErrorSyntax, "string"},
		{"unquoted", fmt.Errorf("something else"), ErrorSyntax, ""},
		{"unterminated quote", fmt.Errorf("broken 'quote"), ErrorSyntax, ""},
		{"dashes stripped", fmt.Errorf("Ambiguous option '--fl', matches [flag fleg]"), ErrorSyntax, "fl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := backendError(tt.err)
			checkError(t, got, tt.kind)
			checkError(t, got, ErrorParsing)
			if got.Name != tt.arg {
				t.Errorf("wrong name: '%s'", got.Name)
			}
			if got.Error() != tt.err.Error() {
				t.Errorf("message changed: %s", got.Error())
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("cause not wrapped")
			}
		})
	}
}

func TestParseErrorIs(t *testing.T) {
	err := newParseError(ErrorArity, "pair", nil, "Argument '%s' expects %d values, got %d", "pair", 2, 1)
	if !errors.Is(err, ErrorArity) || !errors.Is(err, ErrorParsing) {
		t.Errorf("kind not matched: %#v", err)
	}
	if errors.Is(err, ErrorValueConversion) {
		t.Errorf("matched the wrong kind")
	}
	if err.Error() != "Argument 'pair' expects 2 values, got 1" {
		t.Errorf("wrong message: %s", err)
	}
	if err.Unwrap() != nil {
		t.Errorf("unexpected cause: %v", err.Unwrap())
	}
}

func TestAggregate(t *testing.T) {
	if aggregate(nil) != nil {
		t.Errorf("aggregate of nothing isn't nil")
	}
	one := newParseError(ErrorMissingRequiredArgument, "a", nil, "one")
	if aggregate([]error{one}) != one {
		t.Errorf("single error was wrapped")
	}
	two := newParseError(ErrorMissingRequiredArgument, "b", nil, "two")
	err := aggregate([]error{one, two})
	if err == nil || err.Error() != "one\ntwo" {
		t.Errorf("wrong aggregate: %v", err)
	}
	if !errors.Is(err, ErrorMissingRequiredArgument) {
		t.Errorf("aggregate lost the kind")
	}
}
