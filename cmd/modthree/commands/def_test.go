package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadDefinitionFile_DefaultsNameToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Parity.json")
	body := `{"states":["E","O"],"alphabet":["1"],"initial":"E","accepting":["E"],
"transitions":[{"from":"E","on":"1","to":"O"},{"from":"O","on":"1","to":"E"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	def, err := readDefinitionFile(path)
	if err != nil {
		t.Fatalf("readDefinitionFile: %v", err)
	}
	if def.Name != "parity" {
		t.Fatalf("Name = %q, want parity", def.Name)
	}
	if len(def.Transitions) != 2 || def.Transitions[1].To != "E" {
		t.Fatalf("transitions = %+v", def.Transitions)
	}
}

func TestReadDefinitionFile_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := os.WriteFile(path, []byte(`{"name":"x","final_states":["A"]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := readDefinitionFile(path); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&ExitError{Code: exitRejected, Err: inner})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("errors.As failed for %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatal("ExitError does not unwrap to its cause")
	}
	if got := (&ExitError{Code: 1}).Error(); got != "exit status 1" {
		t.Fatalf("Error() = %q", got)
	}
}
