package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modthree/internal/digest"
	"modthree/internal/domain"
	"modthree/internal/store"
)

func parity(name domain.DefinitionName) domain.Definition {
	return domain.Definition{
		Name:      name,
		States:    []string{"EVEN", "ODD"},
		Alphabet:  []string{"0", "1"},
		Initial:   "EVEN",
		Accepting: []string{"EVEN"},
		Transitions: []domain.TransitionDoc{
			{From: "EVEN", On: "0", To: "EVEN"},
			{From: "EVEN", On: "1", To: "ODD"},
			{From: "ODD", On: "0", To: "ODD"},
			{From: "ODD", On: "1", To: "EVEN"},
		},
	}
}

func TestDefinition_SaveLoad_OK(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "definitions")
	var defs domain.DefinitionStore = store.NewDefinitionFileStore(dir, nil)

	if err := defs.SaveDefinition(parity("parity")); err != nil {
		t.Fatalf("save definition: %v", err)
	}

	got, ok, err := defs.LoadDefinition("parity")
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	if !ok {
		t.Fatal("saved definition not found")
	}
	if got.Initial != "EVEN" || len(got.Transitions) != 4 {
		t.Fatalf("mismatch after load: %+v", got)
	}
	if got.Fingerprint != digest.Fingerprint(got) {
		t.Fatalf("fingerprint %q not stamped on save", got.Fingerprint)
	}
}

func TestDefinition_LoadMissing(t *testing.T) {
	defs := store.NewDefinitionFileStore(t.TempDir(), nil)

	_, ok, err := defs.LoadDefinition("nope")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if ok {
		t.Fatal("missing definition reported as found")
	}
}

func TestDefinition_InvalidName(t *testing.T) {
	defs := store.NewDefinitionFileStore(t.TempDir(), nil)

	err := defs.SaveDefinition(parity("../escape"))
	if !errors.Is(err, domain.ErrInvalidDefinitionName) {
		t.Fatalf("save with bad name: err = %v, want ErrInvalidDefinitionName", err)
	}
	if _, _, err := defs.LoadDefinition("A/B"); !errors.Is(err, domain.ErrInvalidDefinitionName) {
		t.Fatalf("load with bad name: err = %v, want ErrInvalidDefinitionName", err)
	}
}

func TestDefinition_TamperedFileFails(t *testing.T) {
	dir := t.TempDir()
	defs := store.NewDefinitionFileStore(dir, nil)
	if err := defs.SaveDefinition(parity("parity")); err != nil {
		t.Fatalf("save definition: %v", err)
	}

	path := filepath.Join(dir, "parity.json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	edited := strings.Replace(string(b), `"initial": "EVEN"`, `"initial": "ODD"`, 1)
	if edited == string(b) {
		t.Fatal("test fixture did not change")
	}
	if err := os.WriteFile(path, []byte(edited), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, _, err := defs.LoadDefinition("parity"); !errors.Is(err, store.ErrFingerprintMismatch) {
		t.Fatalf("load tampered: err = %v, want ErrFingerprintMismatch", err)
	}
}

func TestDefinition_ListAndDelete(t *testing.T) {
	dir := t.TempDir()
	defs := store.NewDefinitionFileStore(dir, nil)

	if got, err := defs.ListDefinitions(); err != nil || len(got) != 0 {
		t.Fatalf("list empty store = %v, %v", got, err)
	}
	for _, n := range []domain.DefinitionName{"zeta", "alpha", "mid"} {
		if err := defs.SaveDefinition(parity(n)); err != nil {
			t.Fatalf("save %s: %v", n, err)
		}
	}
	// Stray files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	list, err := defs.ListDefinitions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, d := range list {
		names = append(names, d.Name.String())
	}
	if got := strings.Join(names, ","); got != "alpha,mid,zeta" {
		t.Fatalf("list order = %s, want alpha,mid,zeta", got)
	}

	removed, err := defs.DeleteDefinition("mid")
	if err != nil || !removed {
		t.Fatalf("delete mid = %v, %v", removed, err)
	}
	removed, err = defs.DeleteDefinition("mid")
	if err != nil || removed {
		t.Fatalf("second delete mid = %v, %v", removed, err)
	}
	if list, _ := defs.ListDefinitions(); len(list) != 2 {
		t.Fatalf("got %d definitions after delete, want 2", len(list))
	}
}
