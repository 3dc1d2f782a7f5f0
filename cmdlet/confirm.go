package cmdlet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Confirmer asks whether a state-changing command may proceed.
type Confirmer interface {
	Confirm(ctx context.Context, command, target string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, command, target string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, command, target string) (bool, error) {
	return f(ctx, command, target)
}

// Decline is a Confirmer that always declines.
var Decline = ConfirmFunc(func(context.Context, string, string) (bool, error) { return false, nil })

// Accept is a Confirmer that always accepts.
var Accept = ConfirmFunc(func(context.Context, string, string) (bool, error) { return true, nil })

// Prompter asks on a terminal. When the session is not interactive it
// declines, since nobody can answer.
//
// A single goroutine reads answers, one line per prompt. The line answering
// a cancelled prompt is discarded rather than handed to the next prompt.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool

	mu       sync.Mutex
	start    sync.Once
	requests chan chan answer
}

type answer struct {
	line string
	err  error
}

// NewPrompter returns a Prompter reading answers from in and writing prompts
// to out.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		requests:    make(chan chan answer),
	}
}

// Interactive reports whether prompts can be answered.
func (p *Prompter) Interactive() bool { return p.interactive }

func (p *Prompter) read() {
	for reply := range p.requests {
		line, err := p.in.ReadString('\n')
		reply <- answer{line, err}
	}
}

// Confirm implements Confirmer. Only "y" and "yes" accept. Concurrent calls
// prompt one at a time.
func (p *Prompter) Confirm(ctx context.Context, command, target string) (bool, error) {
	if !p.interactive {
		return false, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start.Do(func() { go p.read() })

	if target == "" {
		target = "(no target)"
	}
	fmt.Fprintf(p.out, "Are you sure you want to perform this action?\nPerforming the operation %q on target %q.\n[Y] Yes  [N] No (default is \"N\"): ", command, target)

	reply := make(chan answer, 1)
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case p.requests <- reply:
	}
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-reply:
		if a.err != nil && a.err != io.EOF {
			return false, fmt.Errorf("failed to read confirmation: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
