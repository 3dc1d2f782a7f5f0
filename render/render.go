// Package render writes command output as JSON, YAML or plain text.
//
// Values are normalized through their JSON encoding first, so SDK shapes
// render with their wire field names and enum values whatever the format.
package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (json|yaml|text)", s)
	}
}

// metadataField is the SDK response field carrying middleware metadata.
const metadataField = "ResultMetadata"

// Writer emits values to w in one format. It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	w       io.Writer
	format  Format
	emitted int
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Emit writes one value. Nil values and values that normalize to null
// write nothing.
func (w *Writer) Emit(v any) error {
	doc, err := normalize(v)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	var buf bytes.Buffer
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(yamlNumbers(doc)); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	case FormatText:
		writeText(&buf, doc, "")
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.format == FormatYAML && w.emitted > 0 {
		if _, err := io.WriteString(w.w, "---\n"); err != nil {
			return err
		}
	}
	if _, err := w.w.Write(buf.Bytes()); err != nil {
		return err
	}
	w.emitted++
	return nil
}

// normalize converts v to the generic form of its JSON encoding and drops
// response metadata. Numbers stay json.Number so integers keep their digits.
func normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if rewritten, ok := rewrite(reflect.ValueOf(v)); ok {
		v = rewritten
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	if m, ok := doc.(map[string]any); ok {
		delete(m, metadataField)
	}
	return doc, nil
}

var (
	convertersMu sync.RWMutex
	converters   = map[reflect.Type]func(any) any{}
)

// RegisterConverter makes values held as T render as whatever fn returns.
// T is usually an SDK union interface whose member structs would otherwise
// encode as {"Value":...} and lose the member name.
func RegisterConverter[T any](fn func(T) any) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	convertersMu.Lock()
	defer convertersMu.Unlock()
	converters[t] = func(v any) any { return fn(v.(T)) }
}

func converterFor(t reflect.Type) func(any) any {
	convertersMu.RLock()
	defer convertersMu.RUnlock()
	return converters[t]
}

// rewrite walks v and applies registered converters. It reports false when
// nothing under v was converted, in which case v encodes unchanged. Structs
// holding a converted value are copied into maps keyed by field name, which
// is how untagged SDK shapes encode anyway.
func rewrite(v reflect.Value) (any, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if conv := converterFor(v.Type()); conv != nil {
		if (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil() {
			return nil, false
		}
		return conv(v.Interface()), true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
		return rewrite(v.Elem())
	case reflect.Struct:
		t := v.Type()
		fields := make(map[string]any, t.NumField())
		changed := false
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			r, ok := rewrite(v.Field(i))
			if !ok {
				r = v.Field(i).Interface()
			}
			fields[t.Field(i).Name] = r
			changed = changed || ok
		}
		return fields, changed
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() || scalarKind(v.Type().Elem().Kind()) {
			return nil, false
		}
		items := make([]any, v.Len())
		changed := false
		for i := range items {
			r, ok := rewrite(v.Index(i))
			if !ok {
				r = v.Index(i).Interface()
			}
			items[i] = r
			changed = changed || ok
		}
		return items, changed
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String || v.IsNil() || scalarKind(v.Type().Elem().Kind()) {
			return nil, false
		}
		entries := make(map[string]any, v.Len())
		changed := false
		iter := v.MapRange()
		for iter.Next() {
			r, ok := rewrite(iter.Value())
			if !ok {
				r = iter.Value().Interface()
			}
			entries[iter.Key().String()] = r
			changed = changed || ok
		}
		return entries, changed
	}
	return nil, false
}

func scalarKind(k reflect.Kind) bool {
	return k <= reflect.Complex128 || k == reflect.String
}

// yamlNumbers replaces json.Number values with plain scalar nodes so YAML
// prints the number literal instead of a quoted string.
func yamlNumbers(doc any) any {
	switch v := doc.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = yamlNumbers(item)
		}
	case []any:
		for i, item := range v {
			v[i] = yamlNumbers(item)
		}
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}
	}
	return doc
}

// writeText renders scalars bare, lists one item per line and objects as
// "Key : value" lines. Nested objects are printed as compact JSON.
func writeText(buf *bytes.Buffer, doc any, indent string) {
	switch v := doc.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		width := 0
		for k := range v {
			keys = append(keys, k)
			width = max(width, len(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(buf, "%s%-*s : %s\n", indent, width, k, inline(v[k]))
		}
	case []any:
		for i, item := range v {
			if _, isObject := item.(map[string]any); isObject {
				if i > 0 {
					buf.WriteByte('\n')
				}
				writeText(buf, item, indent)
				continue
			}
			fmt.Fprintf(buf, "%s%s\n", indent, inline(item))
		}
	default:
		fmt.Fprintf(buf, "%s%s\n", indent, inline(v))
	}
}

func inline(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return fmt.Sprint(x)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}
