package cmdlet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gurre/awscmd/binder"
)

const (
	// SelectAll emits the whole response.
	SelectAll = "*"
	// SelectNothing emits nothing.
	SelectNothing = "-"
	// selectParam prefixes a parameter name whose bound value is emitted.
	selectParam = "^"
)

func (o *Operation[P, In, Out]) selectorNames() []string {
	names := make([]string, 0, len(o.Selectors))
	for name := range o.Selectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// selector resolves the output projection from -Select, -PassThru and the
// command default. All validation happens here, before any remote call.
func (o *Operation[P, In, Out]) selector(s *binder.Set, c *common) (func(*Out) (any, bool), error) {
	expr, explicit := c.Select.Get()
	if c.PassThru.Or(false) {
		if explicit {
			return nil, ErrSelectorConflict
		}
		expr = selectParam + o.PassThru
	} else if !explicit {
		expr = o.Select
	}
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "" || expr == SelectNothing:
		return func(*Out) (any, bool) { return nil, false }, nil

	case expr == SelectAll:
		return func(out *Out) (any, bool) { return out, out != nil }, nil

	case strings.HasPrefix(expr, selectParam):
		name := strings.TrimPrefix(expr, selectParam)
		if !s.Has(name) {
			return nil, fmt.Errorf("%w: %s is not a parameter of %s", ErrUnknownSelector, expr, o.Name())
		}
		return func(*Out) (any, bool) { return s.Lookup(name) }, nil
	}

	fn, ok := o.Selectors[expr]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s, %s, ^Parameter, %s)",
			ErrUnknownSelector, expr, SelectAll, SelectNothing, strings.Join(o.selectorNames(), ", "))
	}
	return func(out *Out) (any, bool) {
		if out == nil {
			return nil, false
		}
		return fn(out), true
	}, nil
}
