//go:build debug
// +build debug

package endgame

import (
	"strings"
	"testing"
)

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		var r = recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		var msg, ok = r.(string)
		if !ok || !strings.Contains(msg, want) {
			t.Errorf("panic %v, want message containing %q", r, want)
		}
	}()
	f()
}

func TestWrongMaterialPanics(t *testing.T) {
	var r = NewRegistry()
	var krkp = mustPosition(t, "7K/8/8/8/1k6/8/4p3/R7 w - - 0 1")
	var krkb = mustPosition(t, "8/8/8/8/8/2kb4/8/R3K3 w - - 0 1")
	var entry = mustProbe(t, r, &krkp)
	mustPanic(t, "wrong material", func() {
		entry.Evaluate(&krkb)
	})
}

func TestWrongFamilyPanics(t *testing.T) {
	var r = NewRegistry()
	var krpkr = mustPosition(t, "r7/8/8/8/6P1/8/2k5/4K2R b - - 0 1")
	var krkp = mustPosition(t, "7K/8/8/8/1k6/8/4p3/R7 w - - 0 1")
	var scaleEntry = mustProbe(t, r, &krpkr)
	mustPanic(t, "no exact-value evaluator", func() {
		scaleEntry.Evaluate(&krpkr)
	})
	var valueEntry = mustProbe(t, r, &krkp)
	mustPanic(t, "no scale-factor evaluator", func() {
		valueEntry.Scale(&krkp)
	})
}

func TestNormalizeNeedsStrongPawn(t *testing.T) {
	var krkb = mustPosition(t, "8/8/8/8/8/2kb4/8/R3K3 w - - 0 1")
	mustPanic(t, "exactly one strong pawn", func() {
		normalize(&krkb, true, 0)
	})
}
