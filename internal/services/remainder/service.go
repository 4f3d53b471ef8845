package remainder

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"modthree/internal/automaton"
	"modthree/internal/automaton/modthree"
	"modthree/internal/domain"
)

// Service computes remainders modulo 3 with one shared computer.
type Service struct {
	mu       sync.Mutex
	computer *modthree.Computer
	logger   *log.Logger
}

// New returns a remainder service. A nil logger discards output; transition
// traces are logged at debug level.
func New(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		computer: modthree.New(automaton.WithLogger(logger)),
		logger:   logger,
	}
}

// Compute returns bits modulo 3.
func (s *Service) Compute(bits string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.computer.ComputeRemainder(bits)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("remainder computed", "input", bits, "remainder", r)
	return r, nil
}

// ComputeAll computes every input in order. A bad input is recorded in its
// result and does not stop the batch; cancellation does, returning the results
// gathered so far together with the context error.
func (s *Service) ComputeAll(ctx context.Context, inputs []string) ([]domain.RemainderResult, error) {
	out := make([]domain.RemainderResult, 0, len(inputs))
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		r, err := s.Compute(in)
		if err != nil {
			s.logger.Warn("input rejected", "input", in, "error", err)
		}
		out = append(out, domain.RemainderResult{Input: in, Remainder: r, Err: err})
	}
	return out, nil
}

// Trace returns the states visited while reading bits, starting with S0, and
// the resulting remainder.
func (s *Service) Trace(bits string) ([]automaton.State, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.computer.ComputeRemainder(bits)
	if err != nil {
		return nil, 0, err
	}

	a := s.computer.Automaton()
	a.Reset()
	path := []automaton.State{a.CurrentState()}
	for _, sym := range automaton.Symbols(bits) {
		next, err := a.Step(sym)
		if err != nil {
			return nil, 0, err
		}
		path = append(path, next)
	}
	return path, r, nil
}

// Compile-time assertion that Service implements domain.RemainderService.
var _ domain.RemainderService = (*Service)(nil)
