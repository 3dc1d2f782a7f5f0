package binder

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurre/awscmd/optional"
)

type shape struct {
	Key   *string
	Value *string
}

type params struct {
	Name    optional.Value[string]
	Version optional.Value[int64]
	Count   optional.Value[int32]
	Keys    optional.Value[[]string]
	Format  optional.Value[string]
	Tags    optional.Value[[]shape]
	When    optional.Value[time.Time]
	Force   optional.Value[bool]
}

func newSet(strict bool, p *params) *Set {
	s := New("Test-Command", strict)
	String(s, &p.Name, "ApplicationName", "name", Required(), FromPipeline())
	Int64(s, &p.Version, "CurrentApplicationVersionId", "version", Required())
	Int32(s, &p.Count, "InputParallelism_Count", "count", Alias("Input_InputParallelism_Count"))
	Strings(s, &p.Keys, "TagKey", "keys")
	Enum(s, &p.Format, "RecordFormatType", "format", []string{"JSON", "CSV"})
	JSON(s, &p.Tags, "Tag", "tags")
	Time(s, &p.When, "CreateTimestamp", "when")
	Switch(s, &p.Force, "Force", "skip confirmation")
	return s
}

func TestParseBindsValues(t *testing.T) {
	var p params
	s := newSet(true, &p)
	err := s.Parse([]string{
		"-ApplicationName", "app",
		"-CurrentApplicationVersionId", "3",
		"-Input_InputParallelism_Count", "2",
		"-TagKey", "a,b", "-TagKey", "c",
		"-Tag", `[{"Key":"env","Value":"prod"}]`,
		"-CreateTimestamp", "2024-01-02T03:04:05Z",
		"-Force",
	})
	require.NoError(t, err)

	assert.Equal(t, "app", p.Name.Or(""))
	assert.Equal(t, int64(3), p.Version.Or(0))
	assert.Equal(t, int32(2), p.Count.Or(0))
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys.Or(nil))
	tags := p.Tags.Or(nil)
	require.Len(t, tags, 1)
	assert.Equal(t, "env", *tags[0].Key)
	assert.Equal(t, 2024, p.When.Or(time.Time{}).Year())
	assert.True(t, p.Force.Or(false))
	assert.True(t, s.WasBound("InputParallelism_Count"))
	assert.Empty(t, s.Warnings())
}

func TestRequiredMissingWarnsInStrictMode(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse([]string{"-CurrentApplicationVersionId", "1"}))

	warnings := s.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ApplicationName")
	assert.False(t, p.Name.IsBound())
}

func TestRequiredMissingSilentWhenNotStrict(t *testing.T) {
	var p params
	s := newSet(false, &p)
	require.NoError(t, s.Parse(nil))
	assert.Empty(t, s.Warnings())
}

func TestNullLiteralBindsWithoutValue(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse([]string{"-ApplicationName", NullLiteral, "-CurrentApplicationVersionId", "1"}))

	assert.True(t, p.Name.IsNull())
	assert.True(t, s.WasBound("ApplicationName"))
	_, ok := s.Lookup("ApplicationName")
	assert.False(t, ok)

	warnings := s.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "passing null as a value for parameter ApplicationName")
}

func TestRequiredNullWarnsWhenNotStrict(t *testing.T) {
	var p params
	s := newSet(false, &p)
	require.NoError(t, s.Parse([]string{"-ApplicationName", NullLiteral}))
	assert.Len(t, s.Warnings(), 1)
}

func TestBindingTwiceFails(t *testing.T) {
	var p params
	s := newSet(true, &p)
	err := s.Parse([]string{"-InputParallelism_Count", "1", "-Input_InputParallelism_Count", "2"})
	var bindErr *Error
	require.ErrorAs(t, err, &bindErr)
	assert.Contains(t, err.Error(), "bound more than once")
}

func TestInvalidValueFails(t *testing.T) {
	var p params
	s := newSet(true, &p)
	err := s.Parse([]string{"-CurrentApplicationVersionId", "abc"})
	require.Error(t, err)
	assert.False(t, p.Version.IsBound())
}

func TestUnknownFlagFails(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.Error(t, s.Parse([]string{"-Nope", "x"}))
}

func TestUnknownEnumWarns(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse([]string{"-ApplicationName", "a", "-CurrentApplicationVersionId", "1", "-RecordFormatType", "XML"}))
	assert.Equal(t, "XML", p.Format.Or(""))
	require.Len(t, s.Warnings(), 1)
	assert.Contains(t, s.Warnings()[0], "RecordFormatType")
}

func TestEmptyListIsPresent(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse([]string{"-TagKey", ""}))
	keys, ok := p.Keys.Get()
	require.True(t, ok)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestPositionalBindsPipelineParameter(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse([]string{"-CurrentApplicationVersionId", "1", "app"}))
	assert.Equal(t, "app", p.Name.Or(""))

	var q params
	s = newSet(true, &q)
	require.Error(t, s.Parse([]string{"a", "b"}))
}

func TestPositionalMayPrecedeNamedParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"first", []string{"app", "-CurrentApplicationVersionId", "7"}},
		{"last", []string{"-CurrentApplicationVersionId", "7", "app"}},
		{"after terminator", []string{"-CurrentApplicationVersionId", "7", "--", "app"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p params
			s := newSet(true, &p)
			require.NoError(t, s.Parse(tt.args))
			assert.Equal(t, "app", p.Name.Or(""))
			assert.Equal(t, int64(7), p.Version.Or(0))
		})
	}
}

func TestPositionalRejectedWhenParameterBoundByName(t *testing.T) {
	var p params
	s := newSet(true, &p)
	err := s.Parse([]string{"app", "-ApplicationName", "other"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected argument "app"`)

	var q params
	s = newSet(true, &q)
	err = s.Parse([]string{"a", "-CurrentApplicationVersionId", "1", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected argument "b"`)
}

func TestBindPipeline(t *testing.T) {
	var p params
	s := newSet(true, &p)
	require.NoError(t, s.Parse(nil))
	require.NoError(t, s.BindPipeline(optional.Value[string]{}))
	assert.False(t, p.Name.IsBound())

	require.NoError(t, s.BindPipeline(optional.Of("piped")))
	assert.Equal(t, "piped", p.Name.Or(""))
	assert.Equal(t, "ApplicationName", s.PipelineParameter())

	require.Error(t, s.BindPipeline(optional.Of("again")))
}

func TestBindPipelineWithoutParameter(t *testing.T) {
	s := New("Get-Nothing", true)
	require.NoError(t, s.Parse(nil))
	require.Error(t, s.BindPipeline(optional.Of("x")))
}

func TestJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Key":"a","Value":"b"}]`), 0o644))

	for _, ref := range []string{"file://" + path, "@" + path} {
		var p params
		s := newSet(true, &p)
		require.NoError(t, s.Parse([]string{"-Tag", ref}))
		assert.Len(t, p.Tags.Or(nil), 1)
	}
}

func TestUsage(t *testing.T) {
	var p params
	s := newSet(true, &p)
	var buf bytes.Buffer
	s.Usage(&buf)
	out := buf.String()
	assert.Contains(t, out, "-ApplicationName <string> (required, pipeline)")
	assert.Contains(t, out, "aliases: Input_InputParallelism_Count")
	assert.Contains(t, out, "  -Force\n")
}
