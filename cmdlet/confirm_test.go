package cmdlet

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterAnswers(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.answer), &out, true)
			ok, err := p.Confirm(context.Background(), "Remove-KINAApplication", "app")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, out.String(), `"Remove-KINAApplication" on target "app"`)
		})
	}
}

func TestPrompterNonInteractiveDeclines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\n"), &out, false)
	ok, err := p.Confirm(context.Background(), "Remove-KINAApplication", "app")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func TestPrompterHonoursCancellation(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompter(r, io.Discard, true)
	ok, err := p.Confirm(ctx, "Remove-KINAApplication", "app")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

// notifyingReader reports each Read before blocking on the wrapped reader.
type notifyingReader struct {
	r       io.Reader
	reading chan struct{}
}

func (n *notifyingReader) Read(b []byte) (int, error) {
	select {
	case n.reading <- struct{}{}:
	default:
	}
	return n.r.Read(b)
}

func TestCancelledPromptDoesNotAnswerNextPrompt(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	in := &notifyingReader{r: r, reading: make(chan struct{}, 1)}
	p := NewPrompter(in, io.Discard, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.Confirm(ctx, "Remove-KINAApplication", "first")
		done <- err
	}()
	<-in.reading
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	go func() {
		_, _ = io.WriteString(w, "n\n")
		_, _ = io.WriteString(w, "y\n")
	}()
	ok, err := p.Confirm(context.Background(), "Remove-KINAApplication", "second")
	require.NoError(t, err)
	assert.True(t, ok, "the answer typed for the cancelled prompt was reused")
}

func TestConcurrentPromptsReadOneLineEach(t *testing.T) {
	p := NewPrompter(strings.NewReader("y\nn\n"), io.Discard, true)
	results := make(chan bool, 2)
	for range 2 {
		go func() {
			ok, err := p.Confirm(context.Background(), "Stop-KINAApplication", "app")
			assert.NoError(t, err)
			results <- ok
		}()
	}
	got := []bool{<-results, <-results}
	assert.ElementsMatch(t, []bool{true, false}, got)
}

func TestNonInteractiveDeclineWarns(t *testing.T) {
	f := newFixture(ImpactHigh)
	f.env.Confirmer = NewPrompter(strings.NewReader(""), io.Discard, false)
	require.NoError(t, f.run("-Name", "w"))
	assert.Zero(t, f.calls.Load())
	assert.Len(t, f.logs.FilterMessageSnippet("use -Force").All(), 1)
}
