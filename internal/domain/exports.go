package domain

import (
	interfaces "modthree/internal/domain/interfaces"
	types "modthree/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DefinitionName             = types.DefinitionName
	InvalidDefinitionNameError = types.InvalidDefinitionNameError
	Fingerprint                = types.Fingerprint
	TransitionDoc              = types.TransitionDoc
	Definition                 = types.Definition
	DefinitionSummary          = types.DefinitionSummary
	RunResult                  = types.RunResult
	RemainderResult            = types.RemainderResult
)

// Interface aliases expose contracts from the interfaces subpackage.
type (
	DefinitionStore   = interfaces.DefinitionStore
	DefinitionService = interfaces.DefinitionService
	RemainderService  = interfaces.RemainderService
)

// ErrInvalidDefinitionName is re-exported from the types subpackage.
var ErrInvalidDefinitionName = types.ErrInvalidDefinitionName
