package fft

import (
	"errors"
	"testing"
)

func TestPlanErrorMessage(t *testing.T) {
	e := &PlanError{Op: "CreatePlan", N: 3, Dir: Forward, Err: ErrNotPowerOfTwo}
	got := e.Error()
	want := "fft: CreatePlan(N=3, dir=Forward): size must be a power of two"
	if got != want {
		t.Errorf("PlanError.Error() = %q, want %q", got, want)
	}
}

func TestPlanErrorUnwrap(t *testing.T) {
	e := &PlanError{Op: "CreatePlan", N: 3, Dir: Forward, Err: ErrNotPowerOfTwo}
	if !errors.Is(e, ErrNotPowerOfTwo) {
		t.Errorf("errors.Is(e, ErrNotPowerOfTwo) = false, want true")
	}
	if errors.Is(e, ErrSizeTooSmall) {
		t.Errorf("errors.Is(e, ErrSizeTooSmall) = true, want false")
	}
}

func checkIsPlanError(t *testing.T, context string, err error, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got nil", context)
	}
	var pe *PlanError
	if !errors.As(err, &pe) {
		t.Fatalf("%s: expected *PlanError, got %T", context, err)
	}
	if !errors.Is(err, want) {
		t.Errorf("%s: expected errors.Is(err, %v) to hold, got %v", context, want, err)
	}
}
