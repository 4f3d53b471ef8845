package modthree_test

import (
	"errors"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"modthree/internal/automaton"
	"modthree/internal/automaton/modthree"
)

func TestComputeRemainder_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits string
		want int
	}{
		{"1101", 1}, // 13
		{"1110", 2}, // 14
		{"1111", 0}, // 15
		{"110", 0},  // 6
		{"1010", 1}, // 10
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"00", 0},
		{"01", 1},
		{"10", 2},
		{"11", 0},
		{"101010", 0}, // 42
		{"111111", 0}, // 63
		{"000000", 0},
	}

	c := modthree.New()
	for _, tt := range tests {
		got, err := c.ComputeRemainder(tt.bits)
		if err != nil {
			t.Fatalf("ComputeRemainder(%q): %v", tt.bits, err)
		}
		if got != tt.want {
			t.Errorf("ComputeRemainder(%q) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestComputeRemainder_MatchesIntegerModulo(t *testing.T) {
	t.Parallel()

	c := modthree.New()
	for n := 0; n < 1<<12; n++ {
		bits := strconv.FormatUint(uint64(n), 2)
		got, err := c.ComputeRemainder(bits)
		if err != nil {
			t.Fatalf("ComputeRemainder(%q): %v", bits, err)
		}
		if want := n % 3; got != want {
			t.Fatalf("ComputeRemainder(%q) = %d, want %d", bits, got, want)
		}
	}
}

func TestComputeRemainder_LongStrings(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	three := big.NewInt(3)
	c := modthree.New()

	for i := 0; i < 50; i++ {
		var b strings.Builder
		n := 64 + rng.Intn(512)
		for j := 0; j < n; j++ {
			b.WriteByte(byte('0' + rng.Intn(2)))
		}
		bits := b.String()

		v, ok := new(big.Int).SetString(bits, 2)
		if !ok {
			t.Fatalf("big.Int rejected %q", bits)
		}
		want := int(new(big.Int).Mod(v, three).Int64())

		got, err := c.ComputeRemainder(bits)
		if err != nil {
			t.Fatalf("ComputeRemainder: %v", err)
		}
		if got != want {
			t.Fatalf("ComputeRemainder(%d bits) = %d, want %d", n, got, want)
		}
	}
}

func TestComputeRemainder_Deterministic(t *testing.T) {
	t.Parallel()

	c := modthree.New()
	for _, bits := range []string{"1101", "1110", "100000000001"} {
		first, err := c.ComputeRemainder(bits)
		if err != nil {
			t.Fatalf("ComputeRemainder(%q): %v", bits, err)
		}
		second, err := c.ComputeRemainder(bits)
		if err != nil {
			t.Fatalf("ComputeRemainder(%q): %v", bits, err)
		}
		if first != second {
			t.Errorf("ComputeRemainder(%q) gave %d then %d", bits, first, second)
		}
	}
}

func TestComputeRemainder_RejectsNonBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits  string
		char  rune
		index int
	}{
		{"102", '2', 2},
		{"abc", 'a', 0},
		{"1 0", ' ', 1},
		{"1é1x", 'é', 1},
	}

	for _, tt := range tests {
		c := modthree.New()
		if _, err := c.ComputeRemainder("1"); err != nil {
			t.Fatalf("ComputeRemainder(\"1\"): %v", err)
		}

		_, err := c.ComputeRemainder(tt.bits)
		if !errors.Is(err, modthree.ErrInvalidInput) {
			t.Fatalf("ComputeRemainder(%q) error = %v, want ErrInvalidInput", tt.bits, err)
		}
		var inErr *modthree.InvalidInputError
		if !errors.As(err, &inErr) {
			t.Fatalf("error %T is not *InvalidInputError", err)
		}
		if inErr.Char != tt.char || inErr.Index != tt.index {
			t.Errorf("ComputeRemainder(%q) reported (%q, %d), want (%q, %d)",
				tt.bits, inErr.Char, inErr.Index, tt.char, tt.index)
		}
		if got := c.CurrentState(); got != modthree.S1 {
			t.Errorf("state changed to %q by rejected input %q", got, tt.bits)
		}
	}
}

func TestResetAndCurrentState(t *testing.T) {
	t.Parallel()

	c := modthree.New()
	if got := c.CurrentState(); got != modthree.S0 {
		t.Fatalf("new computer at %q, want S0", got)
	}
	if _, err := c.ComputeRemainder("1110"); err != nil {
		t.Fatalf("ComputeRemainder: %v", err)
	}
	if got := c.CurrentState(); got != modthree.S2 {
		t.Fatalf("CurrentState() = %q, want S2", got)
	}
	c.Reset()
	c.Reset()
	if got := c.CurrentState(); got != modthree.S0 {
		t.Fatalf("CurrentState() after Reset = %q, want S0", got)
	}
}

func TestDefinition_TotalAndAllAccepting(t *testing.T) {
	t.Parallel()

	a := modthree.New().Automaton()
	if !a.IsComplete() {
		t.Fatal("mod-3 table is not total")
	}
	for _, s := range a.States() {
		if !a.IsAccepting(s) {
			t.Errorf("state %q is not accepting", s)
		}
		r, ok := modthree.Remainder(s)
		if !ok {
			t.Fatalf("no remainder for %q", s)
		}
		back, ok := modthree.StateFor(r)
		if !ok || back != s {
			t.Errorf("StateFor(%d) = %q, want %q", r, back, s)
		}
	}
	if _, ok := modthree.StateFor(3); ok {
		t.Error("StateFor(3) succeeded")
	}
}

func TestDefinition_FollowsRecurrence(t *testing.T) {
	t.Parallel()

	for _, tr := range modthree.New().Automaton().Transitions() {
		from, _ := modthree.Remainder(tr.From)
		to, _ := modthree.Remainder(tr.To)
		bit := int(tr.On - '0')
		if want := (2*from + bit) % 3; to != want {
			t.Errorf("%s --%s--> %s, want remainder %d", tr.From, tr.On, tr.To, want)
		}
	}
}

func TestDefinition_FreshCopies(t *testing.T) {
	t.Parallel()

	d := modthree.Definition()
	d.Transitions[automaton.Key{From: modthree.S0, On: '1'}] = modthree.S0

	got, err := modthree.New().ComputeRemainder("1")
	if err != nil || got != 1 {
		t.Fatalf("ComputeRemainder(\"1\") = %d, %v after mutating a returned definition", got, err)
	}
}
