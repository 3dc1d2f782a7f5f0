package mock

import (
	"context"
	"sync"
)

// Call is one recorded client call.
type Call struct {
	Operation string
	Input     any
}

// Service records calls and serves scripted responses. The service client
// mocks embed it.
type Service struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]any
	errs      map[string]error
	block     bool
	entered   chan string
}

// Respond makes op return out, which must be a pointer to the operation's
// output shape. Operations without a scripted response return an empty one.
func (s *Service) Respond(op string, out any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responses == nil {
		s.responses = make(map[string]any)
	}
	s.responses[op] = out
}

// Fail makes op return err.
func (s *Service) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errs == nil {
		s.errs = make(map[string]error)
	}
	s.errs[op] = err
}

// Block makes every call wait until its context is done. The returned channel
// receives the operation name when a call starts waiting.
func (s *Service) Block() <-chan string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.block = true
	s.entered = make(chan string, 16)
	return s.entered
}

// Calls returns the recorded calls in order.
func (s *Service) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns the number of recorded calls.
func (s *Service) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastInput returns the input of the most recent call, or nil.
func (s *Service) LastInput() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1].Input
}

// Reset forgets recorded calls and scripted behavior.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
	s.responses = nil
	s.errs = nil
	s.block = false
	s.entered = nil
}

func invoke[Out any](s *Service, ctx context.Context, op string, in any) (*Out, error) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Operation: op, Input: in})
	resp := s.responses[op]
	err := s.errs[op]
	block, entered := s.block, s.entered
	s.mu.Unlock()

	if block {
		entered <- op
		<-ctx.Done()
		return nil, context.Cause(ctx)
	}
	if err != nil {
		return nil, err
	}
	if out, ok := resp.(*Out); ok {
		return out, nil
	}
	return new(Out), nil
}
