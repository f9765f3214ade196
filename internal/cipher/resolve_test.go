package cipher

import (
	"errors"
	"testing"

	"github.com/abhisek/cipherplay/internal/catalog"
)

func sampleRound() *Round {
	return &Round{
		Level: LevelBeginner,
		Options: []Option{
			{catalog.Circle, catalog.Star},
			{catalog.Star, catalog.Circle},
			{catalog.Star, catalog.Star},
		},
		CorrectIndex: 1,
	}
}

func TestResolveSelection(t *testing.T) {
	r := sampleRound()
	tests := []struct {
		index   int
		correct bool
	}{
		{0, false},
		{1, true},
		{2, false},
	}
	for _, tt := range tests {
		res, err := ResolveSelection(r, tt.index)
		if err != nil {
			t.Fatalf("ResolveSelection(%d) error: %v", tt.index, err)
		}
		if res.Correct != tt.correct {
			t.Errorf("ResolveSelection(%d) = %v, want %v", tt.index, res.Correct, tt.correct)
		}
	}
}

func TestResolveSelection_OutOfRange(t *testing.T) {
	r := sampleRound()
	for _, idx := range []int{-1, 3, 10} {
		_, err := ResolveSelection(r, idx)
		if !errors.Is(err, ErrSelectionOutOfRange) {
			t.Errorf("ResolveSelection(%d) err = %v, want ErrSelectionOutOfRange", idx, err)
		}
	}
}

func TestResolveSelection_Idempotent(t *testing.T) {
	r := sampleRound()
	first, _ := ResolveSelection(r, 1)
	second, _ := ResolveSelection(r, 1)
	if first != second {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if r.CorrectIndex != 1 || len(r.Options) != 3 {
		t.Error("round was mutated by resolution")
	}
}

func TestOption_Signature(t *testing.T) {
	a := Option{catalog.Star, catalog.Circle}
	b := Option{catalog.Circle, catalog.Star}
	if a.Signature() == b.Signature() {
		t.Error("order must be part of the signature")
	}
	if got := a.Signature(); got != "star,circle" {
		t.Errorf("Signature() = %q", got)
	}
	if got := a.String(); got != "★ ●" {
		t.Errorf("String() = %q", got)
	}
}
