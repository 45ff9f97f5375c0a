// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// They are variables so they can be overridden for localization.
package text

// ErrorMissingRequiredArgument holds the text for a positional argument that received no value.
// It has a string placeholder '%s' for the name of the argument.
var ErrorMissingRequiredArgument = "Missing required argument '%s'"

// ErrorMissingRequiredOption holds the text for a required option that wasn't called.
// It has a string placeholder '%s' for the name of the option.
var ErrorMissingRequiredOption = "Missing required option '--%s'"

// ErrorTooFewValues holds the text for a positional argument that received fewer values than declared.
var ErrorTooFewValues = "Argument '%s' expects %d values, got %d"

// ErrorTooManyArguments holds the text for positional values left after every argument is satisfied.
var ErrorTooManyArguments = "Too many positional arguments: %s"

// ErrorConvertOption holds the text for an option value that can't be stored.
var ErrorConvertOption = "Argument error for option '--%s': %s"

// ErrorConvertArgument holds the text for a positional value that can't be stored.
var ErrorConvertArgument = "Argument error for argument '%s': %s"

// ErrorConvert holds the text for a failed type conversion.
// Placeholders are for the raw value and the target type name.
var ErrorConvert = "Can't convert string to %[2]s: '%[1]s'"

// Usage banner

// UsageHeader starts the synopsis line.
var UsageHeader = "Usage:"

// UsageOptionMarker stands for the options in the synopsis line.
var UsageOptionMarker = "[OPTION]..."

// PositionalArgumentsHeader is the title of the positional argument list.
var PositionalArgumentsHeader = "positional arguments"

// OptionalArgumentsHeader is the title of the optional argument list.
var OptionalArgumentsHeader = "optional arguments"

// RequiredMarker is appended to the description of required options.
var RequiredMarker = "(required)"

// Messages produced by go-getoptions that are matched on.

// BackendUnknownOption is the prefix of the go-getoptions unknown option error.
var BackendUnknownOption = "Unknown option"

// BackendOptionsHeader is the header go-getoptions writes above its option list.
var BackendOptionsHeader = "OPTIONS:"

// BackendDefaultPrefix opens the default value go-getoptions writes after an option description.
var BackendDefaultPrefix = "(default: "
