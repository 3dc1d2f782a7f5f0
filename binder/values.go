package binder

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gurre/awscmd/optional"
)

// scalar binds a single value parsed from its flag text.
type scalar[T any] struct {
	dst   *optional.Value[T]
	parse func(string) (T, error)
	name  string
	sw    bool
}

func (b *scalar[T]) set(raw string) error {
	v, err := b.parse(raw)
	if err != nil {
		return err
	}
	*b.dst = optional.Of(v)
	return nil
}

func (b *scalar[T]) setNull()           { *b.dst = optional.Null[T]() }
func (b *scalar[T]) null() bool          { return b.dst.IsNull() }
func (b *scalar[T]) lookup() (any, bool) { return b.dst.Get() }
func (b *scalar[T]) kind() string        { return b.name }
func (b *scalar[T]) isSwitch() bool      { return b.sw }
func (b *scalar[T]) repeatable() bool    { return false }

// list binds a collection. Each flag occurrence appends its comma-separated
// items, so "-TagKey a,b -TagKey c" yields [a b c].
type list[T any] struct {
	dst   *optional.Value[[]T]
	parse func(string) (T, error)
	name  string
}

func (b *list[T]) set(raw string) error {
	cur, _ := b.dst.Get()
	if cur == nil {
		cur = []T{}
	}
	for _, item := range splitList(raw) {
		v, err := b.parse(item)
		if err != nil {
			return err
		}
		cur = append(cur, v)
	}
	*b.dst = optional.Of(cur)
	return nil
}

func (b *list[T]) setNull()           { *b.dst = optional.Null[[]T]() }
func (b *list[T]) null() bool          { return b.dst.IsNull() }
func (b *list[T]) lookup() (any, bool) { return b.dst.Get() }
func (b *list[T]) kind() string        { return b.name }
func (b *list[T]) isSwitch() bool      { return false }
func (b *list[T]) repeatable() bool    { return true }

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseString(raw string) (string, error) { return raw, nil }

// String registers a string parameter.
func String(s *Set, dst *optional.Value[string], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[string]{dst: dst, parse: parseString, name: "string"}, opts)
}

// Document registers a string parameter that may also be read from a file
// with file://path or @path, for SQL code and policy texts.
func Document(s *Set, dst *optional.Value[string], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[string]{dst: dst, name: "string", parse: func(raw string) (string, error) {
		data, err := readDocument(raw)
		return string(data), err
	}}, opts)
}

// Int32 registers a 32-bit integer parameter.
func Int32(s *Set, dst *optional.Value[int32], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[int32]{dst: dst, name: "int", parse: func(raw string) (int32, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		return int32(n), err
	}}, opts)
}

// Int64 registers a 64-bit integer parameter.
func Int64(s *Set, dst *optional.Value[int64], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[int64]{dst: dst, name: "long", parse: func(raw string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	}}, opts)
}

// Switch registers a boolean parameter that is set by its presence.
func Switch(s *Set, dst *optional.Value[bool], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[bool]{dst: dst, name: "switch", sw: true, parse: strconv.ParseBool}, opts)
}

// Time registers an RFC 3339 timestamp parameter.
func Time(s *Set, dst *optional.Value[time.Time], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[time.Time]{dst: dst, name: "timestamp", parse: func(raw string) (time.Time, error) {
		return time.Parse(time.RFC3339, strings.TrimSpace(raw))
	}}, opts)
}

// Strings registers a string collection parameter.
func Strings(s *Set, dst *optional.Value[[]string], name, usage string, opts ...Option) {
	s.register(name, usage, &list[string]{dst: dst, parse: parseString, name: "string,..."}, opts)
}

// enumParser accepts any value, as the service owns the set of valid values,
// and warns in strict mode when the value is not one the SDK knows about.
func enumParser[E ~string](s *Set, name string, known []E) func(string) (E, error) {
	return func(raw string) (E, error) {
		v := E(strings.TrimSpace(raw))
		if len(known) > 0 && !slices.Contains(known, v) {
			s.warnf("value %q for parameter %s is not one of %v", raw, name, known)
		}
		return v, nil
	}
}

// Enum registers a parameter of an SDK enum type. known is usually the
// result of the enum's Values method.
func Enum[E ~string](s *Set, dst *optional.Value[E], name, usage string, known []E, opts ...Option) {
	s.register(name, usage, &scalar[E]{dst: dst, parse: enumParser(s, name, known), name: "enum"}, opts)
}

// Enums registers a collection of SDK enum values.
func Enums[E ~string](s *Set, dst *optional.Value[[]E], name, usage string, known []E, opts ...Option) {
	s.register(name, usage, &list[E]{dst: dst, parse: enumParser(s, name, known), name: "enum,..."}, opts)
}

// JSON registers a parameter whose value is a JSON document decoded into T,
// typically an SDK shape or a slice of shapes. The flag text is inline JSON,
// or file://path or @path to read the document from a file.
func JSON[T any](s *Set, dst *optional.Value[T], name, usage string, opts ...Option) {
	s.register(name, usage, &scalar[T]{dst: dst, name: "json", parse: decodeJSON[T]}, opts)
}

func decodeJSON[T any](raw string) (T, error) {
	var v T
	data, err := readDocument(raw)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("invalid JSON: %w", err)
	}
	return v, nil
}

func readDocument(raw string) ([]byte, error) {
	var path string
	switch {
	case strings.HasPrefix(raw, "file://"):
		path = strings.TrimPrefix(raw, "file://")
	case strings.HasPrefix(raw, "@"):
		path = strings.TrimPrefix(raw, "@")
	default:
		return []byte(raw), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
