// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argspec

import (
	"fmt"
	"strings"
	"time"

	"github.com/DavidGamba/go-argspec/internal/text"
	"github.com/spf13/cast"
)

// Value - Bound storage for an argument.
// Set receives one raw token at a time.
type Value interface {
	Set(raw string) error
	String() string
	TypeName() string
	IsSlice() bool
	HasDefault() bool
}

// Bindable - Types a Slot can bind to.
type Bindable interface {
	string | int | int64 | uint | float64 | bool | time.Duration |
		[]string | []int | []float64
}

// Slot - Typed bound storage.
type Slot[T Bindable] struct {
	p          *T
	hasDefault bool
	assigned   bool // set after the first Set, slices append from then on
}

// Var - Binds the variable behind p.
// The variable keeps its current contents until a value is supplied.
// Integers are read as decimal, `010` is 10. Use a 0x, 0o or 0b prefix for
// other bases.
//
//	var limit int
//	spec.AddOptionalArgument("limit", "Max results.", argspec.Var(&limit).Default(10))
func Var[T Bindable](p *T) *Slot[T] {
	if p == nil {
		panic("argspec: Var called with a nil pointer")
	}
	return &Slot[T]{p: p}
}

// Default - Writes v to the bound variable and marks the slot as having a default.
// The default is shown in the usage output.
func (s *Slot[T]) Default(v T) *Slot[T] {
	*s.p = v
	s.hasDefault = true
	return s
}

// HasDefault - Indicates if Default was called.
func (s *Slot[T]) HasDefault() bool {
	return s.hasDefault
}

// Set - Converts raw and stores it.
// Slices drop their default on the first call and append on every call.
func (s *Slot[T]) Set(raw string) error {
	var err error
	switch p := any(s.p).(type) {
	case *string:
		*p = raw
	case *int:
		err = convert(p, decimal(raw), cast.ToIntE)
	case *int64:
		err = convert(p, decimal(raw), cast.ToInt64E)
	case *uint:
		err = convert(p, decimal(raw), cast.ToUintE)
	case *float64:
		err = convert(p, raw, cast.ToFloat64E)
	case *bool:
		err = convert(p, raw, cast.ToBoolE)
	case *time.Duration:
		err = convert(p, raw, cast.ToDurationE)
	case *[]string:
		err = appendTo(p, !s.assigned, raw, cast.ToStringE)
	case *[]int:
		err = appendTo(p, !s.assigned, decimal(raw), cast.ToIntE)
	case *[]float64:
		err = appendTo(p, !s.assigned, raw, cast.ToFloat64E)
	}
	if err != nil {
		return &ConversionError{Value: raw, Type: s.TypeName(), Err: err}
	}
	s.assigned = true
	return nil
}

func (s *Slot[T]) String() string {
	switch p := any(s.p).(type) {
	case *string:
		return *p
	case *time.Duration:
		return p.String()
	case *[]string:
		return strings.Join(*p, ",")
	case *[]int:
		return joinSlice(*p)
	case *[]float64:
		return joinSlice(*p)
	}
	return fmt.Sprint(*s.p)
}

// TypeName - Name of the element type, used as the default help placeholder.
func (s *Slot[T]) TypeName() string {
	switch any(s.p).(type) {
	case *string, *[]string:
		return "string"
	case *int, *[]int:
		return "int"
	case *int64:
		return "int64"
	case *uint:
		return "uint"
	case *float64, *[]float64:
		return "float64"
	case *bool:
		return "bool"
	case *time.Duration:
		return "duration"
	}
	return fmt.Sprintf("%T", *s.p)
}

// IsSlice - Indicates if the slot accumulates values.
func (s *Slot[T]) IsSlice() bool {
	switch any(s.p).(type) {
	case *[]string, *[]int, *[]float64:
		return true
	}
	return false
}

// ConversionError - A raw value that couldn't be converted to the slot type.
type ConversionError struct {
	Value string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf(text.ErrorConvert, e.Value, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// decimal strips the leading zeros of a decimal integer so cast doesn't read
// it as octal. Values with an explicit base prefix (0x, 0o, 0b) are kept.
func decimal(raw string) string {
	sign, digits := "", raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) > 1 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return raw
		}
		digits = strings.TrimLeft(digits, "0")
		if digits == "" {
			digits = "0"
		}
	}
	return sign + digits
}

func convert[V any](p *V, raw string, fn func(interface{}) (V, error)) error {
	v, err := fn(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func appendTo[V any](p *[]V, reset bool, raw string, fn func(interface{}) (V, error)) error {
	v, err := fn(raw)
	if err != nil {
		return err
	}
	if reset {
		*p = nil
	}
	*p = append(*p, v)
	return nil
}

func joinSlice[V any](s []V) string {
	parts := make([]string, 0, len(s))
	for _, e := range s {
		parts = append(parts, fmt.Sprint(e))
	}
	return strings.Join(parts, ",")
}
