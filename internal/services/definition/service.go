package definition

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"modthree/internal/automaton"
	"modthree/internal/digest"
	"modthree/internal/domain"
)

// ErrNotFound is returned when no definition is stored under a name.
var ErrNotFound = errors.New("definition not found")

// ctxCheckInterval is how many symbols Run consumes between context checks.
const ctxCheckInterval = 4096

// Service manages automaton definitions on top of a DefinitionStore.
type Service struct {
	store  domain.DefinitionStore
	logger *log.Logger
}

// New returns a definition service backed by the given store. A nil logger
// discards output.
func New(s domain.DefinitionStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: s, logger: logger}
}

// Import validates def, fingerprints it and stores it under def.Name. The
// returned copy carries the fingerprint.
func (s *Service) Import(def domain.Definition) (domain.Definition, error) {
	if err := def.Name.Validate(); err != nil {
		return domain.Definition{}, err
	}
	if _, err := s.Build(def); err != nil {
		return domain.Definition{}, fmt.Errorf("definition %s: %w", def.Name, err)
	}
	def.Fingerprint = digest.Fingerprint(def)
	if err := s.store.SaveDefinition(def); err != nil {
		return domain.Definition{}, err
	}
	s.logger.Info("definition imported", "name", def.Name, "fingerprint", def.Fingerprint)
	return def, nil
}

// Get returns the stored definition called name.
func (s *Service) Get(name domain.DefinitionName) (domain.Definition, error) {
	def, ok, err := s.store.LoadDefinition(name)
	if err != nil {
		return domain.Definition{}, err
	}
	if !ok {
		return domain.Definition{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return def, nil
}

// List summarises every stored definition, ordered by name.
func (s *Service) List() ([]domain.DefinitionSummary, error) {
	defs, err := s.store.ListDefinitions()
	if err != nil {
		return nil, err
	}
	out := make([]domain.DefinitionSummary, 0, len(defs))
	for _, def := range defs {
		a, err := s.Build(def)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", def.Name, err)
		}
		out = append(out, domain.DefinitionSummary{
			Name:        def.Name,
			Fingerprint: def.Fingerprint,
			States:      len(a.States()),
			Symbols:     len(a.Alphabet()),
			Complete:    a.IsComplete(),
		})
	}
	return out, nil
}

// Remove deletes the stored definition called name.
func (s *Service) Remove(name domain.DefinitionName) error {
	removed, err := s.store.DeleteDefinition(name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	s.logger.Info("definition removed", "name", name)
	return nil
}

// Build turns a definition document into an automaton. Symbols must be single
// characters and no (from, on) pair may appear twice.
func (s *Service) Build(def domain.Definition) (*automaton.Automaton, error) {
	ad := automaton.Definition{
		States:      make([]automaton.State, len(def.States)),
		Alphabet:    make([]automaton.Symbol, 0, len(def.Alphabet)),
		Transitions: make(map[automaton.Key]automaton.State, len(def.Transitions)),
		Initial:     automaton.State(def.Initial),
		Accepting:   make([]automaton.State, len(def.Accepting)),
	}
	for i, st := range def.States {
		ad.States[i] = automaton.State(st)
	}
	for i, st := range def.Accepting {
		ad.Accepting[i] = automaton.State(st)
	}
	for _, text := range def.Alphabet {
		sym, err := automaton.ParseSymbol(text)
		if err != nil {
			return nil, err
		}
		ad.Alphabet = append(ad.Alphabet, sym)
	}
	for _, t := range def.Transitions {
		sym, err := automaton.ParseSymbol(t.On)
		if err != nil {
			return nil, err
		}
		key := automaton.Key{From: automaton.State(t.From), On: sym}
		if _, dup := ad.Transitions[key]; dup {
			return nil, &automaton.ConfigurationError{
				Reason: automaton.DuplicateTransition,
				State:  key.From,
				Symbol: sym,
			}
		}
		ad.Transitions[key] = automaton.State(t.To)
	}
	return automaton.New(ad, automaton.WithLogger(s.logger))
}

// Run loads the named definition and runs it over input.
func (s *Service) Run(ctx context.Context, name domain.DefinitionName, input string) (domain.RunResult, error) {
	def, err := s.Get(name)
	if err != nil {
		return domain.RunResult{}, err
	}
	return s.RunDocument(ctx, def, input)
}

// RunDocument runs def over input from its initial state and records every
// state visited. Acceptance is reported in the result, not as an error.
func (s *Service) RunDocument(ctx context.Context, def domain.Definition, input string) (domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RunResult{}, err
	}
	a, err := s.Build(def)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("definition %s: %w", def.Name, err)
	}

	symbols := automaton.Symbols(input)
	path := make([]string, 0, len(symbols)+1)
	path = append(path, a.CurrentState().String())
	for i, sym := range symbols {
		if i > 0 && i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return domain.RunResult{}, err
			}
		}
		next, err := a.Step(sym)
		if err != nil {
			return domain.RunResult{}, fmt.Errorf("input position %d: %w", i, err)
		}
		path = append(path, next.String())
	}

	final := a.CurrentState()
	res := domain.RunResult{
		Definition: def.Name,
		Input:      input,
		Final:      final.String(),
		Accepted:   a.IsAccepting(final),
		Path:       path,
	}
	s.logger.Debug("definition run", "name", def.Name, "final", res.Final, "accepted", res.Accepted)
	return res, nil
}

// Compile-time assertion that Service implements domain.DefinitionService.
var _ domain.DefinitionService = (*Service)(nil)
