// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package usage - text building blocks for the usage banner.
package usage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-argspec/internal/text"
)

// Padding - indentation of list entries.
var Padding = 4

// Entry - a name and its description.
type Entry struct {
	Name        string
	Description string
}

// Synopsis - Returns the usage line.
// Positional names are listed bare in the given order.
// When unbounded is set the last name is repeated as an open ended list.
func Synopsis(programName string, positionals []string, unbounded bool) string {
	parts := []string{text.UsageHeader, programName, text.UsageOptionMarker}
	parts = append(parts, positionals...)
	if unbounded && len(positionals) > 0 {
		parts = append(parts, fmt.Sprintf("[%s]...", positionals[len(positionals)-1]))
	}
	return strings.Join(parts, " ") + "\n"
}

// Description - Returns the program description line, or nothing when empty.
func Description(description string) string {
	if description == "" {
		return ""
	}
	return description + "\n"
}

// ArgumentList - Returns the header followed by one line per entry.
// Names are padded to a common column and multi-line descriptions stay
// aligned with it.
// An empty list returns an empty string.
func ArgumentList(header string, entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	factor := longestStringLen(names)
	indent := strings.Repeat(" ", Padding)
	continuation := "\n" + strings.Repeat(" ", Padding+factor+4)

	out := ""
	for _, e := range entries {
		line := fmt.Sprintf("%s%s    %s", indent, pad(e.Name, factor), strings.ReplaceAll(e.Description, "\n", continuation))
		out += strings.TrimRight(line, " ") + "\n"
	}
	return Section(header, out+"\n")
}

// Section - Returns a preformatted body under a header.
// A blank body returns an empty string.
func Section(header, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("%s\n\n%s", header, body)
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
