package cmdlet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gurre/awscmd/audit"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/optional"
)

// Operation describes a command over one remote call. P is the parameter set
// bound from flags, In and Out are the SDK request and response shapes.
//
// Operations are static tables: the parameter-to-field mapping lives in Bind
// and Build, and every projectable response field is listed in Selectors.
type Operation[P, In, Out any] struct {
	Verb    string
	Noun    string
	Service string
	// Action is the IAM action the call needs, e.g. "kinesisanalytics:StartApplication".
	Action   string
	Synopsis string
	Impact   Impact

	// PassThru names the parameter echoed by -PassThru. Empty disables the flag.
	PassThru string
	// Select is the default selector: SelectAll, SelectNothing or a key of Selectors.
	Select    string
	Selectors map[string]func(*Out) any

	Bind  func(s *binder.Set, p *P)
	Build func(p *P) (*In, error)
	Call  func(ctx context.Context, c Clients, in *In) (*Out, error)
	// Target describes the resource acted on, for prompts and the audit trail.
	Target func(p *P) string
}

// Name returns the verb-noun command name.
func (o *Operation[P, In, Out]) Name() string { return o.Verb + "-" + o.Noun }

// Info describes the command.
func (o *Operation[P, In, Out]) Info() Info {
	return Info{Name: o.Name(), Service: o.Service, Synopsis: o.Synopsis, Impact: o.Impact}
}

// common holds the parameters every command shares.
type common struct {
	Select   optional.Value[string]
	PassThru optional.Value[bool]
	Force    optional.Value[bool]
	WhatIf   optional.Value[bool]
}

func (o *Operation[P, In, Out]) bind(p *P, c *common, strict bool) *binder.Set {
	s := binder.New(o.Name(), strict)
	binder.String(s, &c.Select, "Select",
		fmt.Sprintf("output selector: %s, %s, ^Parameter or one of %s (default %s)",
			SelectAll, SelectNothing, strings.Join(o.selectorNames(), ", "), o.Select))
	if o.PassThru != "" {
		binder.Switch(s, &c.PassThru, "PassThru", "emit the value of -"+o.PassThru+" (legacy; prefer -Select ^"+o.PassThru+")")
	}
	if o.Impact > ImpactNone {
		binder.Switch(s, &c.Force, "Force", "do not ask for confirmation")
		binder.Switch(s, &c.WhatIf, "WhatIf", "describe the operation without calling the service")
	}
	if o.Bind != nil {
		o.Bind(s, p)
	}
	return s
}

// Usage writes the synopsis and parameter list.
func (o *Operation[P, In, Out]) Usage(w io.Writer) {
	var (
		p P
		c common
	)
	s := o.bind(&p, &c, false)
	fmt.Fprintf(w, "%s: %s\n\n", o.Name(), o.Synopsis)
	s.Usage(w)
}

// Run performs one invocation.
func (o *Operation[P, In, Out]) Run(ctx context.Context, env *Env, req Request) error {
	log := env.logger().With(zap.String("command", o.Name()))

	var (
		p P
		c common
	)
	s := o.bind(&p, &c, env.Strict)
	if err := s.Parse(req.Args); err != nil {
		return err
	}
	if err := s.BindPipeline(req.Pipeline); err != nil {
		return err
	}

	project, err := o.selector(s, &c)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Name(), err)
	}

	for _, w := range s.Warnings() {
		log.Warn(w)
		env.Metrics.RecordWarning()
	}

	in, err := o.Build(&p)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Name(), err)
	}

	target := ""
	if o.Target != nil {
		target = o.Target(&p)
	}
	rec := audit.Record{
		Command: o.Name(),
		Service: o.Service,
		Target:  target,
		Region:  env.Region,
	}

	if o.Impact > ImpactNone && c.WhatIf.Or(false) {
		log.Info(fmt.Sprintf("What if: performing the operation %q on target %q", o.Name(), target))
		return nil
	}

	if o.Impact > ImpactNone && o.Impact >= env.Threshold && !env.Force && !c.Force.Or(false) {
		confirmer := env.Confirmer
		if confirmer == nil {
			confirmer = Decline
		}
		ok, err := confirmer.Confirm(ctx, o.Name(), target)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Name(), err)
		}
		if !ok {
			if ic, isPrompter := confirmer.(interface{ Interactive() bool }); isPrompter && !ic.Interactive() {
				log.Warn("confirmation required but the session is not interactive; use -Force to proceed")
			} else {
				log.Info("operation declined", zap.String("target", target))
			}
			env.Metrics.RecordDeclined()
			rec.InvocationID = uuid.NewString()
			rec.Outcome = audit.OutcomeDeclined
			rec.StartedAt = time.Now()
			o.record(ctx, env, log, rec)
			return nil
		}
	}

	if env.Preflight != nil && o.Action != "" {
		if err := env.Preflight.Check(ctx, o.Action); err != nil {
			env.Metrics.RecordFailed()
			rec.InvocationID = uuid.NewString()
			rec.Outcome = audit.OutcomeFailed
			rec.StartedAt = time.Now()
			rec.Error = err.Error()
			o.record(ctx, env, log, rec)
			return fmt.Errorf("%s: %w", o.Name(), err)
		}
	}

	inv, release := newInvocation(ctx, o.Name(), env.Timeout)
	defer release()
	env.Tracker.add(inv)
	log = log.With(zap.String("invocation", inv.ID))
	log.Debug("calling service", zap.String("action", o.Action), zap.Any("request", in))

	out, callErr := o.Call(inv.Context(), env.Clients, in)
	inv.complete()
	env.Tracker.remove(inv)
	elapsed := time.Since(inv.Started)
	env.Metrics.RecordCall(elapsed)

	rec.InvocationID = inv.ID
	rec.StartedAt = inv.Started
	rec.Duration = elapsed

	if callErr != nil {
		callErr = classify(callErr, env.Region, env.Endpoint)
		fields := []zap.Field{zap.Error(callErr)}
		var apiErr smithy.APIError
		if errors.As(callErr, &apiErr) {
			fields = append(fields, zap.String("code", apiErr.ErrorCode()))
		}
		rec.Outcome = audit.OutcomeFailed
		if inv.Stopped() {
			rec.Outcome = audit.OutcomeStopped
			env.Metrics.RecordStopped()
		} else {
			env.Metrics.RecordFailed()
		}
		rec.Error = callErr.Error()
		log.Debug("call failed", fields...)
		o.record(ctx, env, log, rec)
		return &InvocationError{Command: o.Name(), InvocationID: inv.ID, Err: callErr}
	}

	env.Metrics.RecordSucceeded()
	rec.Outcome = audit.OutcomeSucceeded
	o.record(ctx, env, log, rec)

	if v, ok := project(out); ok && env.Output != nil {
		if err := env.Output.Emit(v); err != nil {
			return fmt.Errorf("%s: failed to write output: %w", o.Name(), err)
		}
	}
	return nil
}

// record writes an audit record. Audit failures are logged, never returned:
// the remote call already happened.
func (o *Operation[P, In, Out]) record(ctx context.Context, env *Env, log *zap.Logger, rec audit.Record) {
	if env.Audit == nil {
		return
	}
	if err := env.Audit.Record(context.WithoutCancel(ctx), rec); err != nil {
		log.Warn("failed to record audit entry", zap.Error(err))
	}
}
