package interfaces

import (
	"context"

	"modthree/internal/automaton"
	domaintypes "modthree/internal/domain/types"
)

// DefinitionService validates, stores and runs automaton definitions.
type DefinitionService interface {
	Import(def domaintypes.Definition) (domaintypes.Definition, error)
	Get(name domaintypes.DefinitionName) (domaintypes.Definition, error)
	List() ([]domaintypes.DefinitionSummary, error)
	Remove(name domaintypes.DefinitionName) error
	Build(def domaintypes.Definition) (*automaton.Automaton, error)
	Run(ctx context.Context, name domaintypes.DefinitionName, input string) (domaintypes.RunResult, error)
	RunDocument(ctx context.Context, def domaintypes.Definition, input string) (domaintypes.RunResult, error)
}

// RemainderService computes binary remainders modulo 3.
type RemainderService interface {
	Compute(bits string) (int, error)
	ComputeAll(ctx context.Context, inputs []string) ([]domaintypes.RemainderResult, error)
	Trace(bits string) ([]automaton.State, int, error)
}
