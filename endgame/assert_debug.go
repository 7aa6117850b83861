//go:build debug
// +build debug

package endgame

import (
	"fmt"

	"zugzwang/common"
)

// Invoking an evaluator on material it was not registered for is a caller
// bug, not a runtime condition. Fail fast in the debug build.

func assertMaterial(p *common.Position, e *Entry) {
	if MaterialKey(p) != e.key {
		panic(fmt.Sprintf("endgame: %s invoked on wrong material: %s", e.name, p.String()))
	}
}

func assertFamily(e *Entry, scale bool) {
	if scale && e.scale == nil {
		panic(fmt.Sprintf("endgame: %s has no scale-factor evaluator", e.name))
	}
	if !scale && e.value == nil {
		panic(fmt.Sprintf("endgame: %s has no exact-value evaluator", e.name))
	}
}

func assertSinglePawn(p *common.Position, strongSide bool) {
	if p.Count(common.Pawn, strongSide) != 1 {
		panic(fmt.Sprintf("endgame: normalize needs exactly one strong pawn: %s", p.String()))
	}
}

func assertRankInside(r int) {
	if r <= common.Rank1 || r >= common.Rank7 {
		panic(fmt.Sprintf("endgame: pawn rank %d out of range", r))
	}
}
