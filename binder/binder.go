// Package binder binds command-line flags onto optional parameter values.
//
// Every parameter of a command is registered on a Set with its wire name, any
// aliases for flattened nested paths, and whether it is required or accepts
// pipeline input. Parsing leaves unbound parameters absent; required
// parameters that were never bound produce warnings rather than errors so the
// service can reject the request with its own message.
package binder

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gurre/awscmd/optional"
)

// NullLiteral binds a parameter explicitly to null.
const NullLiteral = "$null"

// Error is a binding failure that prevents a request from being built.
type Error struct {
	Command   string
	Parameter string
	Err       error
}

func (e *Error) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: parameter %s: %v", e.Command, e.Parameter, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrBoundTwice is returned when a scalar parameter is bound more than once.
var ErrBoundTwice = errors.New("parameter bound more than once")

// Option configures a registered parameter.
type Option func(*param)

// Required marks the parameter as required by the remote API.
func Required() Option {
	return func(p *param) { p.required = true }
}

// Alias registers additional flag names for the parameter.
func Alias(names ...string) Option {
	return func(p *param) { p.aliases = append(p.aliases, names...) }
}

// FromPipeline lets the parameter receive piped records and positional input.
func FromPipeline() Option {
	return func(p *param) { p.pipeline = true }
}

// binding is the typed half of a parameter.
type binding interface {
	set(raw string) error
	setNull()
	null() bool
	lookup() (any, bool)
	kind() string
	isSwitch() bool
	repeatable() bool
}

type param struct {
	name     string
	usage    string
	aliases  []string
	required bool
	pipeline bool
	bound    bool
	value    binding
}

// Set is the parameter set of one command invocation.
type Set struct {
	command  string
	strict   bool
	fs       *flag.FlagSet
	params   map[string]*param
	order    []*param
	pipeline *param
	warnings []string
}

// New returns an empty parameter set for command. In strict mode unbound
// required parameters and unknown enum values are reported by Warnings.
func New(command string, strict bool) *Set {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &Set{
		command: command,
		strict:  strict,
		fs:      fs,
		params:  make(map[string]*param),
	}
}

// Command returns the name the set was created for.
func (s *Set) Command() string { return s.command }

func (s *Set) register(name, usage string, b binding, opts []Option) {
	p := &param{name: name, usage: usage, value: b}
	for _, opt := range opts {
		opt(p)
	}
	if _, dup := s.params[name]; dup {
		panic(fmt.Sprintf("binder: %s: parameter %s registered twice", s.command, name))
	}
	s.params[name] = p
	s.order = append(s.order, p)
	if p.pipeline {
		if s.pipeline != nil {
			panic(fmt.Sprintf("binder: %s: more than one pipeline parameter", s.command))
		}
		s.pipeline = p
	}
	fv := &flagValue{s: s, p: p}
	s.fs.Var(fv, name, usage)
	for _, alias := range p.aliases {
		s.params[alias] = p
		s.fs.Var(fv, alias, usage)
	}
}

func (s *Set) bind(p *param, raw string) error {
	if p.bound && !p.value.repeatable() {
		return ErrBoundTwice
	}
	if raw == NullLiteral && !p.value.isSwitch() {
		p.value.setNull()
		p.bound = true
		return nil
	}
	if err := p.value.set(raw); err != nil {
		return err
	}
	p.bound = true
	return nil
}

// Parse binds args. A single positional argument binds the pipeline
// parameter and may appear before, between or after the named parameters.
// Arguments after "--" are all positional.
func (s *Set) Parse(args []string) error {
	var positional []string
	for {
		if err := s.fs.Parse(args); err != nil {
			return &Error{Command: s.command, Err: err}
		}
		rest := s.fs.Args()
		if len(rest) == 0 {
			break
		}
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	switch {
	case len(positional) == 0:
	case s.pipeline == nil || s.pipeline.bound:
		return &Error{Command: s.command, Err: fmt.Errorf("unexpected argument %q", positional[0])}
	case len(positional) > 1:
		return &Error{Command: s.command, Err: fmt.Errorf("unexpected argument %q", positional[1])}
	default:
		if err := s.bind(s.pipeline, positional[0]); err != nil {
			return &Error{Command: s.command, Parameter: s.pipeline.name, Err: err}
		}
	}
	return nil
}

// BindPipeline binds a piped record to the pipeline parameter. An absent
// record is ignored.
func (s *Set) BindPipeline(record optional.Value[string]) error {
	raw, ok := record.Get()
	if !ok {
		return nil
	}
	if s.pipeline == nil {
		return &Error{Command: s.command, Err: errors.New("command does not accept pipeline input")}
	}
	if s.pipeline.bound {
		return &Error{Command: s.command, Parameter: s.pipeline.name,
			Err: errors.New("pipeline input cannot bind a parameter already bound by name")}
	}
	if err := s.bind(s.pipeline, raw); err != nil {
		return &Error{Command: s.command, Parameter: s.pipeline.name, Err: err}
	}
	return nil
}

// Has reports whether name (or an alias) is a registered parameter.
func (s *Set) Has(name string) bool {
	_, ok := s.params[name]
	return ok
}

// WasBound reports whether the parameter was supplied, including as null.
func (s *Set) WasBound(name string) bool {
	p, ok := s.params[name]
	return ok && p.bound
}

// Lookup returns the bound value of a parameter when it is present.
func (s *Set) Lookup(name string) (any, bool) {
	p, ok := s.params[name]
	if !ok {
		return nil, false
	}
	return p.value.lookup()
}

// PipelineParameter returns the name of the pipeline parameter, if any.
func (s *Set) PipelineParameter() string {
	if s.pipeline == nil {
		return ""
	}
	return s.pipeline.name
}

func (s *Set) warnf(format string, args ...any) {
	if s.strict {
		s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
	}
}

// Warnings returns the non-fatal binding warnings collected so far, plus one
// per required parameter bound to null and, in strict mode, one per required
// parameter that was not bound at all.
func (s *Set) Warnings() []string {
	out := append([]string(nil), s.warnings...)
	for _, p := range s.order {
		if !p.required {
			continue
		}
		if (p.bound && p.value.null()) || (!p.bound && s.strict) {
			out = append(out, fmt.Sprintf(
				"passing null as a value for parameter %s which is marked as required", p.name))
		}
	}
	return out
}

// Usage writes one line per parameter, sorted by name.
func (s *Set) Usage(w io.Writer) {
	ps := append([]*param(nil), s.order...)
	sort.Slice(ps, func(i, j int) bool { return ps[i].name < ps[j].name })
	for _, p := range ps {
		var tags []string
		if p.required {
			tags = append(tags, "required")
		}
		if p.pipeline {
			tags = append(tags, "pipeline")
		}
		line := fmt.Sprintf("  -%s <%s>", p.name, p.value.kind())
		if p.value.isSwitch() {
			line = fmt.Sprintf("  -%s", p.name)
		}
		if len(tags) > 0 {
			line += " (" + strings.Join(tags, ", ") + ")"
		}
		fmt.Fprintln(w, line)
		if p.usage != "" {
			fmt.Fprintf(w, "      %s\n", p.usage)
		}
		if len(p.aliases) > 0 {
			fmt.Fprintf(w, "      aliases: %s\n", strings.Join(p.aliases, ", "))
		}
	}
}

// flagValue adapts a parameter to flag.Value.
type flagValue struct {
	s *Set
	p *param
}

func (f *flagValue) String() string {
	if f == nil || f.p == nil {
		return ""
	}
	v, ok := f.p.value.lookup()
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func (f *flagValue) Set(raw string) error {
	return f.s.bind(f.p, raw)
}

func (f *flagValue) IsBoolFlag() bool {
	return f != nil && f.p != nil && f.p.value.isSwitch()
}
