// Package cmdlet runs commands that each map to exactly one remote API call.
//
// A command binds its flags into a fresh parameter set, builds one request,
// asks for confirmation when its impact warrants it, performs the call under a
// cancellable invocation and projects the response through an output selector.
package cmdlet

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gurre/awscmd/audit"
	"github.com/gurre/awscmd/aws"
	"github.com/gurre/awscmd/metrics"
	"github.com/gurre/awscmd/optional"
)

// Impact ranks how disruptive a command is.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactLow
	ImpactMedium
	ImpactHigh

	// impactNever is a threshold no command reaches.
	impactNever Impact = 100
)

// ParseImpact parses a confirmation threshold. "none" disables prompting.
func ParseImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return impactNever, nil
	case "low":
		return ImpactLow, nil
	case "medium":
		return ImpactMedium, nil
	case "high", "":
		return ImpactHigh, nil
	default:
		return 0, fmt.Errorf("unknown confirmation impact %q (none|low|medium|high)", s)
	}
}

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactLow:
		return "low"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	default:
		return "never"
	}
}

// Clients are the service clients a command may call.
type Clients struct {
	KinesisAnalytics aws.KinesisAnalyticsClient
	SecurityLake     aws.SecurityLakeClient
}

// Emitter receives projected command output.
type Emitter interface {
	Emit(v any) error
}

// Preflighter checks that the caller may perform an IAM action.
type Preflighter interface {
	Check(ctx context.Context, action string) error
}

// Env is the explicit configuration of an invocation. Nothing about an
// invocation is taken from package state.
type Env struct {
	Clients   Clients
	Region    string
	Endpoint  string
	Strict    bool
	Force     bool
	Threshold Impact
	Timeout   time.Duration

	Confirmer Confirmer
	Output    Emitter
	Logger    *zap.Logger
	Metrics   *metrics.Metrics

	// Optional collaborators.
	Preflight Preflighter
	Audit     audit.Recorder
	Tracker   *Tracker
}

func (e *Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Request is the input of one invocation.
type Request struct {
	Args     []string
	Pipeline optional.Value[string]
}

// Info describes a command for listings and help.
type Info struct {
	Name     string
	Service  string
	Synopsis string
	Impact   Impact
}

// Command is one externally invokable operation.
type Command interface {
	Name() string
	Info() Info
	Run(ctx context.Context, env *Env, req Request) error
	Usage(w io.Writer)
}

// Registry indexes commands by case-insensitive name.
type Registry struct {
	byName map[string]Command
}

// NewRegistry returns a registry holding cmds. Duplicate names panic.
func NewRegistry(cmds ...[]Command) *Registry {
	r := &Registry{byName: make(map[string]Command)}
	for _, group := range cmds {
		for _, c := range group {
			key := strings.ToLower(c.Name())
			if _, dup := r.byName[key]; dup {
				panic("cmdlet: duplicate command " + c.Name())
			}
			r.byName[key] = c
		}
	}
	return r
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// All returns the commands sorted by name.
func (r *Registry) All() []Command {
	out := make([]Command, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
