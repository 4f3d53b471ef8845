package remainder_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"modthree/internal/automaton"
	"modthree/internal/automaton/modthree"
	"modthree/internal/services/remainder"
)

func TestCompute(t *testing.T) {
	svc := remainder.New(nil)

	got, err := svc.Compute("1101")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got != 1 {
		t.Fatalf("Compute(\"1101\") = %d, want 1", got)
	}
	if _, err := svc.Compute("102"); !errors.Is(err, modthree.ErrInvalidInput) {
		t.Fatalf("Compute(\"102\") error = %v, want ErrInvalidInput", err)
	}
}

func TestComputeAll_RecordsPerInputErrors(t *testing.T) {
	svc := remainder.New(nil)

	res, err := svc.ComputeAll(context.Background(), []string{"1110", "abc", "1111", ""})
	if err != nil {
		t.Fatalf("ComputeAll: %v", err)
	}
	if len(res) != 4 {
		t.Fatalf("got %d results, want 4", len(res))
	}
	if res[0].Remainder != 2 || res[0].Err != nil {
		t.Errorf("res[0] = %+v", res[0])
	}
	if !errors.Is(res[1].Err, modthree.ErrInvalidInput) {
		t.Errorf("res[1].Err = %v, want ErrInvalidInput", res[1].Err)
	}
	if res[2].Remainder != 0 || res[2].Err != nil {
		t.Errorf("res[2] = %+v", res[2])
	}
	if res[3].Remainder != 0 || res[3].Err != nil {
		t.Errorf("res[3] = %+v", res[3])
	}
}

func TestComputeAll_Canceled(t *testing.T) {
	svc := remainder.New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.ComputeAll(ctx, []string{"1", "10"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ComputeAll error = %v, want context.Canceled", err)
	}
	if len(res) != 0 {
		t.Fatalf("got %d results after cancellation, want 0", len(res))
	}
}

func TestTrace(t *testing.T) {
	svc := remainder.New(nil)

	path, r, err := svc.Trace("1110")
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	want := []automaton.State{modthree.S0, modthree.S1, modthree.S0, modthree.S1, modthree.S2}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
	if r != 2 {
		t.Fatalf("remainder = %d, want 2", r)
	}
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	svc := remainder.New(nil)
	inputs := map[string]int{"1101": 1, "1110": 2, "1111": 0, "100000": 2}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		for in, want := range inputs {
			wg.Add(1)
			go func(in string, want int) {
				defer wg.Done()
				got, err := svc.Compute(in)
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- errors.New(in + ": wrong remainder")
				}
			}(in, want)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
