// This file is part of go-argspec.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argspec - Declarative optional and positional arguments on top of
go-getoptions.

Options are handed to go-getoptions, which owns the token grammar (`--name`,
`--name=value`, `--name value`, aliases and the `--` terminator).
The arguments go-getoptions leaves behind are bound, in declaration order, to
the positional arguments.

Positional values that start with a dash go after the `--` terminator.
That includes a lone `-`, often used for stdin, which go-getoptions otherwise
rejects as an unknown option.

	var limit int
	var pattern string
	var files []string

	spec := argspec.New("seek", "Print the lines that contain a pattern.")
	spec.AddOptionalArgumentFlag("ignore-case", "Match without regard to case.", argspec.Alias("i"))
	spec.AddOptionalArgument("limit", "Stop after n matches.", argspec.Var(&limit).Default(10))
	spec.AddPositionalArgument("pattern", "Text to look for.", argspec.Var(&pattern), 1)
	spec.AddPositionalArgument("files", "Files to search.", argspec.Var(&files), argspec.Unbounded)

	if err := spec.ParseAndNotify(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n\n", err)
		fmt.Fprint(os.Stderr, spec.Usage())
		os.Exit(1)
	}
	if spec.Count("ignore-case") > 0 {
		// ...
	}

Panic

Declaration mistakes are programming errors and panic: duplicate names, a
positional argument declared after an unbounded one, a positional count other
than 1 bound to non slice storage, and declaring after Parse.
*/
package argspec

import (
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-argspec/internal/text"
	"github.com/DavidGamba/go-argspec/internal/tokens"
	"github.com/DavidGamba/go-argspec/internal/usage"
	"github.com/DavidGamba/go-getoptions"
	"golang.org/x/exp/slices"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Unbounded - Positional count that consumes every remaining value.
// Only the last positional argument can be unbounded and it requires at least one value.
const Unbounded = -1

type state int

const (
	stateDeclaring state = iota
	stateFailed
	stateParsed
	stateNotified
)

type argument struct {
	name        string
	description string
	aliases     []string
	value       Value // nil for flags
	flag        bool
	positional  bool
	count       int
	required    bool
	envVar      string
	argName     string
	defaultText string // shown in the option list

	// go-getoptions receivers
	flagValue bool
	raw       string
	rawSlice  []string

	supplied bool
	tokens   []string
}

// ArgFn - Modifies an optional argument declaration.
type ArgFn func(*argument)

// Alias - Adds aliases to an optional argument.
// Single letter aliases are called with a single dash, for example `-v`.
func Alias(alias ...string) ArgFn {
	return func(a *argument) {
		a.aliases = append(a.aliases, alias...)
	}
}

// Required - Makes Notify return an error if the optional argument isn't supplied.
func Required() ArgFn {
	return func(a *argument) {
		a.required = true
	}
}

// Env - Reads the value from an environment variable when the option isn't on the command line.
// Precedence higher to lower: command line, environment variable, default.
//
// Flags only accept "true" or "false" in any casing.
// Options bound to slices ignore the environment.
func Env(name string) ArgFn {
	return func(a *argument) {
		a.envVar = name
	}
}

// ArgName - Sets the value placeholder shown in the usage output.
// Defaults to the bound type name, for example `--limit <int>`.
func ArgName(name string) ArgFn {
	return func(a *argument) {
		a.argName = name
	}
}

// Info - Read only view of a declared argument.
type Info struct {
	Name        string
	Description string
	Aliases     []string
	Count       int // Declared positional count, 0 for optional arguments
	Flag        bool
	HasDefault  bool
	Required    bool
}

// ArgumentSpec - Registry of the arguments of one program invocation.
type ArgumentSpec struct {
	programName        string
	programDescription string
	optionals          []*argument
	positionals        []*argument
	names              map[string]*argument
	opt                *getoptions.GetOpt
	state              state
}

// New - Returns an empty ArgumentSpec.
func New(programName, programDescription string) *ArgumentSpec {
	opt := getoptions.New()
	opt.Self(programName, programDescription)
	return &ArgumentSpec{
		programName:        programName,
		programDescription: programDescription,
		names:              map[string]*argument{},
		opt:                opt,
	}
}

// failIfDefined will *panic* if a name or alias is already taken.
func (s *ArgumentSpec) failIfDefined(a *argument) {
	if s.state != stateDeclaring {
		panic("argspec: argument '" + a.name + "' declared after Parse")
	}
	seen := []string{}
	for _, name := range append([]string{a.name}, a.aliases...) {
		if name == "" || strings.HasPrefix(name, "-") {
			panic("argspec: invalid argument name '" + name + "'")
		}
		if _, ok := s.names[name]; ok || slices.Contains(seen, name) {
			panic("argspec: argument '" + name + "' is already defined")
		}
		seen = append(seen, name)
	}
}

func (s *ArgumentSpec) register(a *argument) {
	s.failIfDefined(a)
	s.names[a.name] = a
	for _, alias := range a.aliases {
		s.names[alias] = a
	}
	Logger.Printf("declared %s", a.name)
}

func (s *ArgumentSpec) backendFns(a *argument) []getoptions.ModifyFn {
	description := a.description
	if a.required {
		description = strings.TrimSpace(description + " " + text.RequiredMarker)
	}
	fns := []getoptions.ModifyFn{s.opt.Description(description)}
	if len(a.aliases) > 0 {
		fns = append(fns, s.opt.Alias(a.aliases...))
	}
	if !a.flag {
		argName := a.argName
		if argName == "" {
			argName = a.value.TypeName()
		}
		fns = append(fns, s.opt.ArgName(argName))
	}
	if a.envVar != "" {
		fns = append(fns, s.opt.GetEnv(a.envVar))
	}
	return fns
}

// AddOptionalArgumentFlag - Declares a presence flag, for example `--verbose`.
func (s *ArgumentSpec) AddOptionalArgumentFlag(name, description string, fns ...ArgFn) {
	a := &argument{name: name, description: description, flag: true}
	for _, fn := range fns {
		fn(a)
	}
	s.register(a)
	s.opt.BoolVar(&a.flagValue, name, false, s.backendFns(a)...)
	s.optionals = append(s.optionals, a)
}

// AddOptionalArgument - Declares an option that takes a value, for example `--limit=10`.
// The value is converted to the type bound by value.
// The bound variable is left untouched when the option isn't supplied.
//
// Options bound to slices can be supplied multiple times, each call appends one value.
func (s *ArgumentSpec) AddOptionalArgument(name, description string, value Value, fns ...ArgFn) {
	if value == nil {
		panic("argspec: option '" + name + "' declared without bound storage")
	}
	a := &argument{name: name, description: description, value: value}
	for _, fn := range fns {
		fn(a)
	}
	s.register(a)
	a.defaultText = defaultText(value)
	if value.IsSlice() {
		s.opt.StringSliceVar(&a.rawSlice, name, 1, 1, s.backendFns(a)...)
	} else {
		def := ""
		if value.HasDefault() {
			def = value.String()
		}
		s.opt.StringVar(&a.raw, name, def, s.backendFns(a)...)
	}
	s.optionals = append(s.optionals, a)
}

// defaultText renders the bound contents at declaration time in the form
// go-getoptions uses for its own option types.
func defaultText(value Value) string {
	switch {
	case value.IsSlice():
		if !value.HasDefault() || value.String() == "" {
			return "[]"
		}
		return "[" + value.String() + "]"
	case value.TypeName() == "string":
		return `"` + value.String() + `"`
	}
	return value.String()
}

// AddPositionalArgument - Declares a required positional argument.
// It consumes count values in declaration order, or every remaining value when
// count is Unbounded. A count other than 1 requires slice storage.
func (s *ArgumentSpec) AddPositionalArgument(name, description string, value Value, count int) {
	if value == nil {
		panic("argspec: argument '" + name + "' declared without bound storage")
	}
	if count != Unbounded && count < 1 {
		panic("argspec: argument '" + name + "' has an invalid count")
	}
	if count != 1 && !value.IsSlice() {
		panic("argspec: argument '" + name + "' takes multiple values and needs slice storage")
	}
	if n := len(s.positionals); n > 0 && s.positionals[n-1].count == Unbounded {
		panic("argspec: argument '" + name + "' declared after unbounded argument '" + s.positionals[n-1].name + "'")
	}
	a := &argument{name: name, description: description, value: value, positional: true, count: count}
	s.register(a)
	s.positionals = append(s.positionals, a)
}

// Parse - Parses args, the command line without the program name.
//
// Options are matched by go-getoptions. The remaining values are handed to the
// positional arguments in declaration order and every value is converted into
// its bound storage.
//
// Values converted before a failure stay written.
// A lone `-` is rejected by go-getoptions, pass it after `--`.
// Parse can only be called once.
func (s *ArgumentSpec) Parse(args []string) error {
	if s.state != stateDeclaring {
		panic("argspec: Parse called more than once")
	}
	s.state = stateFailed
	Logger.Printf("parse: %v", args)

	remaining, err := s.opt.Parse(args)
	if err != nil {
		return backendError(err)
	}
	Logger.Printf("remaining: %v", remaining)

	for _, a := range s.optionals {
		a.supplied = s.opt.Called(a.name)
		if !a.supplied || a.flag {
			continue
		}
		if a.value.IsSlice() {
			a.tokens = slices.Clone(a.rawSlice)
		} else {
			a.tokens = []string{a.raw}
		}
	}

	err = s.distribute(remaining)
	if err != nil {
		return err
	}

	for _, a := range s.optionals {
		if err := a.store(text.ErrorConvertOption); err != nil {
			return err
		}
	}
	for _, a := range s.positionals {
		if err := a.store(text.ErrorConvertArgument); err != nil {
			return err
		}
	}

	s.state = stateParsed
	return nil
}

// distribute hands the remaining values out to the positional arguments.
func (s *ArgumentSpec) distribute(remaining []string) error {
	cursor := tokens.New(remaining)
	for _, a := range s.positionals {
		var got []string
		if a.count == Unbounded {
			got = cursor.Rest()
		} else {
			got = cursor.Take(a.count)
		}
		Logger.Printf("positional %s: %v", a.name, got)
		if len(got) == 0 {
			return newParseError(ErrorMissingRequiredArgument, a.name, nil, text.ErrorMissingRequiredArgument, a.name)
		}
		if a.count != Unbounded && len(got) < a.count {
			return newParseError(ErrorArity, a.name, nil, text.ErrorTooFewValues, a.name, a.count, len(got))
		}
		a.supplied = true
		a.tokens = got
	}
	Logger.Printf("positionals took %d of %d values", cursor.Consumed(), cursor.Size())
	if !cursor.Done() {
		extra := "'" + strings.Join(cursor.Peek(), "', '") + "'"
		return newParseError(ErrorArity, "", nil, text.ErrorTooManyArguments, extra)
	}
	return nil
}

func (a *argument) store(format string) error {
	if a.value == nil {
		return nil
	}
	for _, token := range a.tokens {
		if err := a.value.Set(token); err != nil {
			return newParseError(ErrorValueConversion, a.name, err, format, a.name, err)
		}
	}
	return nil
}

// Notify - Runs the checks deferred until every value is known.
// It reports every optional argument declared with Required that wasn't
// supplied, on the command line or through its environment variable.
//
// Notify panics if Parse didn't succeed.
func (s *ArgumentSpec) Notify() error {
	if s.state < stateParsed {
		panic("argspec: Notify called without a successful Parse")
	}
	errs := []error{}
	for _, a := range s.optionals {
		if a.required && !a.supplied {
			errs = append(errs, newParseError(ErrorMissingRequiredArgument, a.name, nil, text.ErrorMissingRequiredOption, a.name))
		}
	}
	if len(errs) > 0 {
		return aggregate(errs)
	}
	s.state = stateNotified
	return nil
}

// ParseAndNotify - Calls Parse followed by Notify.
func (s *ArgumentSpec) ParseAndNotify(args []string) error {
	err := s.Parse(args)
	if err != nil {
		return err
	}
	return s.Notify()
}

// Count - Number of values supplied for the named argument.
// Flags and single valued options return 0 or 1, slice options the number of
// times they were called, and positional arguments the number of values they took.
//
// Count returns 0 for unknown names and until Parse succeeds.
func (s *ArgumentSpec) Count(name string) int {
	if s.state < stateParsed {
		return 0
	}
	a, ok := s.names[name]
	if !ok || !a.supplied {
		return 0
	}
	if a.flag {
		return 1
	}
	return len(a.tokens)
}

// Values - Raw values supplied for the named argument.
func (s *ArgumentSpec) Values(name string) []string {
	if s.state < stateParsed {
		return nil
	}
	a, ok := s.names[name]
	if !ok {
		return nil
	}
	return slices.Clone(a.tokens)
}

// Optionals - Optional arguments in declaration order.
func (s *ArgumentSpec) Optionals() []Info {
	return infoList(s.optionals)
}

// Positionals - Positional arguments in declaration order.
func (s *ArgumentSpec) Positionals() []Info {
	return infoList(s.positionals)
}

func infoList(list []*argument) []Info {
	out := make([]Info, 0, len(list))
	for _, a := range list {
		info := Info{
			Name:        a.name,
			Description: a.description,
			Aliases:     slices.Clone(a.aliases),
			Count:       a.count,
			Flag:        a.flag,
			Required:    a.required || a.positional,
		}
		if a.value != nil {
			info.HasDefault = a.value.HasDefault()
		}
		out = append(out, info)
	}
	return out
}

// Usage - Returns the usage banner.
//
//	Usage: seek [OPTION]... pattern files [files]...
//	Print the lines that contain a pattern.
//
//	positional arguments
//
//	    pattern    Text to look for.
//	    files      Files to search.
//
//	optional arguments
//
//	    ...
//
// The optional arguments list is formatted by go-getoptions.
// Sections without arguments are left out.
func (s *ArgumentSpec) Usage() string {
	names := make([]string, 0, len(s.positionals))
	entries := make([]usage.Entry, 0, len(s.positionals))
	for _, a := range s.positionals {
		names = append(names, a.name)
		entries = append(entries, usage.Entry{Name: a.name, Description: a.description})
	}
	unbounded := len(s.positionals) > 0 && s.positionals[len(s.positionals)-1].count == Unbounded

	out := usage.Synopsis(s.programName, names, unbounded)
	out += usage.Description(s.programDescription)
	out += "\n"
	out += usage.ArgumentList(text.PositionalArgumentsHeader, entries)
	if len(s.optionals) > 0 {
		out += usage.Section(text.OptionalArgumentsHeader, s.optionList())
	}
	return out
}

// optionList returns the go-getoptions option list with every default replaced
// by the text of the bound storage.
func (s *ArgumentSpec) optionList() string {
	body := s.opt.Help(getoptions.HelpOptionList)
	body = strings.TrimPrefix(body, text.BackendOptionsHeader+"\n")
	lines := strings.Split(body, "\n")
	var current *argument
	for i, line := range lines {
		// Entries are indented by four spaces, continuation lines by more.
		if strings.HasPrefix(line, "    -") {
			current = s.optionFromHelpLine(line)
		}
		if current == nil || current.flag {
			continue
		}
		if j := strings.LastIndex(line, text.BackendDefaultPrefix); j >= 0 && strings.HasSuffix(line, ")") {
			lines[i] = line[:j] + text.BackendDefaultPrefix + current.defaultText + ")"
		}
	}
	return strings.Join(lines, "\n")
}

// optionFromHelpLine finds the option an option list entry starts with,
// for example `    --limit|-l <n>`.
func (s *ArgumentSpec) optionFromHelpLine(line string) *argument {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := strings.TrimLeft(strings.SplitN(fields[0], "|", 2)[0], "-")
	a, ok := s.names[name]
	if !ok || a.positional {
		return nil
	}
	return a
}

// WriteUsage - Writes the usage banner to w.
func (s *ArgumentSpec) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, s.Usage())
	return err
}
