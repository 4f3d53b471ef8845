package app

import (
	"github.com/charmbracelet/log"

	"modthree/internal/domain"
	definitionsvc "modthree/internal/services/definition"
	remaindersvc "modthree/internal/services/remainder"
	"modthree/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Store       *store.DefinitionFileStore
	Definitions domain.DefinitionService
	Remainders  domain.RemainderService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *log.Logger) *Wire {
	// File-based store
	definitionStore := store.NewDefinitionFileStore(cfg.DefinitionsDir(), logger.WithPrefix("store"))

	// High-level services
	definitions := definitionsvc.New(definitionStore, logger.WithPrefix("definitions"))
	remainders := remaindersvc.New(logger.WithPrefix("remainder"))

	return &Wire{
		Store:       definitionStore,
		Definitions: definitions,
		Remainders:  remainders,
	}
}
