package interfaces

import domaintypes "modthree/internal/domain/types"

// DefinitionStore persists automaton definitions by name.
type DefinitionStore interface {
	SaveDefinition(def domaintypes.Definition) error
	LoadDefinition(name domaintypes.DefinitionName) (domaintypes.Definition, bool, error)
	ListDefinitions() ([]domaintypes.Definition, error)
	DeleteDefinition(name domaintypes.DefinitionName) (bool, error)
}
