package cmdlet

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gurre/awscmd/audit"
	"github.com/gurre/awscmd/binder"
	"github.com/gurre/awscmd/metrics"
	"github.com/gurre/awscmd/optional"
)

type widgetParams struct {
	Name  optional.Value[string]
	Color optional.Value[string]
}

type widgetInput struct {
	Name  *string
	Color *string
}

type widgetOutput struct {
	Id    *string
	Color *string
}

type emitted struct{ values []any }

func (e *emitted) Emit(v any) error {
	e.values = append(e.values, v)
	return nil
}

type fixture struct {
	op     *Operation[widgetParams, widgetInput, widgetOutput]
	env    *Env
	out    *emitted
	logs   *observer.ObservedLogs
	audit  *audit.MemoryRecorder
	calls  atomic.Int32
	last   *widgetInput
	result *widgetOutput
	err    error
}

func newFixture(impact Impact) *fixture {
	core, logs := observer.New(zap.InfoLevel)
	f := &fixture{
		out:    &emitted{},
		logs:   logs,
		audit:  audit.NewMemoryRecorder(),
		result: &widgetOutput{Id: optional.Of("w-1").Ptr(), Color: optional.Of("blue").Ptr()},
	}
	f.op = &Operation[widgetParams, widgetInput, widgetOutput]{
		Verb:     "New",
		Noun:     "TSTWidget",
		Service:  "test",
		Action:   "test:CreateWidget",
		Synopsis: "Creates a widget.",
		Impact:   impact,
		PassThru: "Name",
		Select:   "Id",
		Selectors: map[string]func(*widgetOutput) any{
			"Id":    func(o *widgetOutput) any { return o.Id },
			"Color": func(o *widgetOutput) any { return o.Color },
		},
		Bind: func(s *binder.Set, p *widgetParams) {
			binder.String(s, &p.Name, "Name", "widget name", binder.Required(), binder.FromPipeline())
			binder.String(s, &p.Color, "Color", "widget color")
		},
		Build: func(p *widgetParams) (*widgetInput, error) {
			return &widgetInput{Name: p.Name.Ptr(), Color: p.Color.Ptr()}, nil
		},
		Call: func(ctx context.Context, c Clients, in *widgetInput) (*widgetOutput, error) {
			f.calls.Add(1)
			f.last = in
			if f.err != nil {
				return nil, f.err
			}
			return f.result, nil
		},
		Target: func(p *widgetParams) string { return p.Name.Or("") },
	}
	f.env = &Env{
		Region:    "eu-west-1",
		Strict:    true,
		Threshold: ImpactHigh,
		Output:    f.out,
		Logger:    zap.New(core),
		Metrics:   metrics.NewMetrics(),
		Audit:     f.audit,
		Tracker:   NewTracker(),
	}
	return f
}

func (f *fixture) run(args ...string) error {
	return f.op.Run(context.Background(), f.env, Request{Args: args})
}

func TestDefaultSelector(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w"))
	require.Len(t, f.out.values, 1)
	assert.Equal(t, "w-1", *f.out.values[0].(*string))
	assert.EqualValues(t, 1, f.calls.Load())
}

func TestSelectAllAndNothing(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w", "-Select", "*"))
	require.NoError(t, f.run("-Name", "w", "-Select", "-"))
	require.Len(t, f.out.values, 1)
	assert.Same(t, f.result, f.out.values[0])
}

func TestSelectParameter(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w", "-Color", "red", "-Select", "^Color"))
	require.Len(t, f.out.values, 1)
	assert.Equal(t, "red", f.out.values[0])
}

func TestPassThruEmitsParameter(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w", "-PassThru"))
	assert.Equal(t, []any{"w"}, f.out.values)
}

func TestSelectorErrorsPrecedeCall(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"passthru with select", []string{"-Name", "w", "-PassThru", "-Select", "Id"}, ErrSelectorConflict},
		{"unknown field", []string{"-Name", "w", "-Select", "Shape"}, ErrUnknownSelector},
		{"unknown parameter", []string{"-Name", "w", "-Select", "^Shape"}, ErrUnknownSelector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(ImpactMedium)
			err := f.run(tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, f.calls.Load())
			assert.Empty(t, f.audit.Records())
		})
	}
}

func TestMissingRequiredParameterWarns(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "$null"))
	assert.EqualValues(t, 1, f.calls.Load())
	assert.Nil(t, f.last.Name)
	warnings := f.logs.FilterLevelExact(zap.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "Name")
	assert.EqualValues(t, 1, f.env.Metrics.GenerateReport().Warnings)
}

func TestPipelineBindsParameter(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.op.Run(context.Background(), f.env, Request{Pipeline: optional.Of("piped")}))
	assert.Equal(t, "piped", *f.last.Name)
}

func TestBuildErrorMakesNoCall(t *testing.T) {
	f := newFixture(ImpactMedium)
	f.op.Build = func(p *widgetParams) (*widgetInput, error) {
		return nil, ErrUnionConflict
	}
	err := f.run("-Name", "w")
	assert.ErrorIs(t, err, ErrUnionConflict)
	assert.Zero(t, f.calls.Load())
}

func TestConfirmation(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		f := newFixture(ImpactHigh)
		f.env.Confirmer = Decline
		require.NoError(t, f.run("-Name", "w"))
		assert.Zero(t, f.calls.Load())
		assert.Empty(t, f.out.values)
		records := f.audit.Records()
		require.Len(t, records, 1)
		assert.Equal(t, audit.OutcomeDeclined, records[0].Outcome)
		assert.EqualValues(t, 1, f.env.Metrics.GenerateReport().Declined)
	})
	t.Run("accepted", func(t *testing.T) {
		f := newFixture(ImpactHigh)
		var target string
		f.env.Confirmer = ConfirmFunc(func(ctx context.Context, command, tgt string) (bool, error) {
			target = tgt
			return true, nil
		})
		require.NoError(t, f.run("-Name", "w"))
		assert.EqualValues(t, 1, f.calls.Load())
		assert.Equal(t, "w", target)
	})
	t.Run("force skips prompt", func(t *testing.T) {
		f := newFixture(ImpactHigh)
		f.env.Confirmer = Decline
		require.NoError(t, f.run("-Name", "w", "-Force"))
		assert.EqualValues(t, 1, f.calls.Load())
	})
	t.Run("below threshold", func(t *testing.T) {
		f := newFixture(ImpactMedium)
		f.env.Confirmer = Decline
		require.NoError(t, f.run("-Name", "w"))
		assert.EqualValues(t, 1, f.calls.Load())
	})
}

func TestWhatIfMakesNoCall(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w", "-WhatIf"))
	assert.Zero(t, f.calls.Load())
	assert.Len(t, f.logs.FilterMessageSnippet("What if").All(), 1)
}

func TestFailedCallIsWrapped(t *testing.T) {
	f := newFixture(ImpactMedium)
	boom := errors.New("boom")
	f.err = boom
	err := f.run("-Name", "w")

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "New-TSTWidget", invErr.Command)
	assert.NotEmpty(t, invErr.InvocationID)

	records := f.audit.Records()
	require.Len(t, records, 1)
	assert.Equal(t, audit.OutcomeFailed, records[0].Outcome)
	assert.Equal(t, invErr.InvocationID, records[0].InvocationID)
	assert.EqualValues(t, 1, f.env.Metrics.GenerateReport().Failed)
}

func TestNameResolutionFailure(t *testing.T) {
	f := newFixture(ImpactMedium)
	f.env.Endpoint = "https://localhost:4566"
	f.err = &net.DNSError{Name: "widgets.eu-west-1.amazonaws.com", Err: "no such host"}
	err := f.run("-Name", "w")

	assert.ErrorIs(t, err, ErrNameResolution)
	var dnsErr *net.DNSError
	assert.ErrorAs(t, err, &dnsErr)
	assert.Contains(t, err.Error(), "eu-west-1")
	assert.Contains(t, err.Error(), "https://localhost:4566")
}

func TestClassifyLeavesOtherErrors(t *testing.T) {
	err := errors.New("access denied")
	assert.Same(t, err, classify(err, "eu-west-1", ""))
}

func TestSucceededCallIsAudited(t *testing.T) {
	f := newFixture(ImpactMedium)
	require.NoError(t, f.run("-Name", "w"))
	records := f.audit.Records()
	require.Len(t, records, 1)
	assert.Equal(t, audit.OutcomeSucceeded, records[0].Outcome)
	assert.Equal(t, "New-TSTWidget", records[0].Command)
	assert.Equal(t, "w", records[0].Target)
	assert.Equal(t, "eu-west-1", records[0].Region)
	assert.Zero(t, f.env.Tracker.Len())
}

type deniedPreflight struct{ actions []string }

func (d *deniedPreflight) Check(ctx context.Context, action string) error {
	d.actions = append(d.actions, action)
	return errors.New("implicitly denied")
}

func TestPreflightDenialMakesNoCall(t *testing.T) {
	f := newFixture(ImpactMedium)
	pre := &deniedPreflight{}
	f.env.Preflight = pre
	require.Error(t, f.run("-Name", "w"))
	assert.Zero(t, f.calls.Load())
	assert.Equal(t, []string{"test:CreateWidget"}, pre.actions)

	records := f.audit.Records()
	require.Len(t, records, 1)
	assert.Equal(t, audit.OutcomeFailed, records[0].Outcome)
	assert.Contains(t, records[0].Error, "implicitly denied")
	assert.NotEmpty(t, records[0].InvocationID)
	report := f.env.Metrics.GenerateReport()
	assert.EqualValues(t, 1, report.Failed)
	assert.Zero(t, report.Calls)
}

func TestUsageListsParameters(t *testing.T) {
	f := newFixture(ImpactHigh)
	var buf bytes.Buffer
	f.op.Usage(&buf)
	usage := buf.String()
	assert.True(t, strings.HasPrefix(usage, "New-TSTWidget: Creates a widget."))
	for _, name := range []string{"Name", "Color", "Select", "PassThru", "Force", "WhatIf"} {
		assert.Contains(t, usage, name)
	}
}

func TestRegistryLookupIgnoresCase(t *testing.T) {
	f := newFixture(ImpactNone)
	r := NewRegistry([]Command{f.op})
	c, ok := r.Lookup("new-tstwidget")
	require.True(t, ok)
	assert.Equal(t, "New-TSTWidget", c.Name())
	assert.Len(t, r.All(), 1)
	assert.Panics(t, func() { NewRegistry([]Command{f.op}, []Command{f.op}) })
}

func TestParseImpact(t *testing.T) {
	for in, want := range map[string]Impact{"Low": ImpactLow, "MEDIUM": ImpactMedium, "high": ImpactHigh, "": ImpactHigh} {
		got, err := ParseImpact(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	never, err := ParseImpact("none")
	require.NoError(t, err)
	assert.Greater(t, never, ImpactHigh)
	_, err = ParseImpact("extreme")
	assert.Error(t, err)
}

func TestIsUsageError(t *testing.T) {
	f := newFixture(ImpactMedium)
	assert.True(t, IsUsageError(f.run("-Name", "w", "-Shape", "round")))
	assert.True(t, IsUsageError(f.run("-Name", "w", "-PassThru", "-Select", "*")))

	f.err = errors.New("throttled")
	err := f.run("-Name", "w")
	require.Error(t, err)
	assert.False(t, IsUsageError(err))
}
