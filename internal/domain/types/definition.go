package types

// TransitionDoc is one row of a stored transition table.
type TransitionDoc struct {
	From string `json:"from"`
	On   string `json:"on"`
	To   string `json:"to"`
}

// Definition is the on-disk form of an automaton. Symbols are one-character
// strings so the document stays readable.
type Definition struct {
	Name        DefinitionName  `json:"name"`
	Description string          `json:"description,omitempty"`
	States      []string        `json:"states"`
	Alphabet    []string        `json:"alphabet"`
	Initial     string          `json:"initial"`
	Accepting   []string        `json:"accepting"`
	Transitions []TransitionDoc `json:"transitions"`
	Fingerprint Fingerprint     `json:"fingerprint,omitempty"`
}

// DefinitionSummary is a listing row for a stored definition.
type DefinitionSummary struct {
	Name        DefinitionName `json:"name"`
	Fingerprint Fingerprint    `json:"fingerprint"`
	States      int            `json:"states"`
	Symbols     int            `json:"symbols"`
	Complete    bool           `json:"complete"`
}
