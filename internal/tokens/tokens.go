// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokens - cursor over the non option arguments left by the option
// parser, handing them out to positional arguments in order.
package tokens

// Cursor - token cursor data
type Cursor struct {
	data []string
	idx  int
}

// New - builds a Cursor over a copy of s.
func New(s []string) *Cursor {
	data := make([]string, len(s))
	copy(data, s)
	return &Cursor{data: data}
}

// Size - returns the total number of tokens.
func (c *Cursor) Size() int {
	return len(c.data)
}

// Consumed - returns the number of tokens already handed out.
func (c *Cursor) Consumed() int {
	return c.idx
}

// Len - returns the number of tokens not yet handed out.
func (c *Cursor) Len() int {
	return len(c.data) - c.idx
}

// Done - tells if every token has been handed out.
func (c *Cursor) Done() bool {
	return c.idx >= len(c.data)
}

// Take - hands out up to n tokens.
// The returned slice is shorter than n when the cursor runs out.
func (c *Cursor) Take(n int) []string {
	if n < 0 {
		n = 0
	}
	end := c.idx + n
	if end > len(c.data) {
		end = len(c.data)
	}
	out := c.data[c.idx:end]
	c.idx = end
	return out
}

// Rest - hands out every remaining token.
func (c *Cursor) Rest() []string {
	return c.Take(c.Len())
}

// Peek - returns the remaining tokens without consuming them.
func (c *Cursor) Peek() []string {
	return c.data[c.idx:]
}
