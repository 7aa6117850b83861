package endgame

import "zugzwang/common"

// normalize maps sq as if the strong side were white and its only pawn stood
// on files A-D. Every square an evaluator reads must go through the same
// mapping, so relative geometry is preserved. Applying it to an already
// canonical position changes nothing.
func normalize(p *common.Position, strongSide bool, sq int) int {
	assertSinglePawn(p, strongSide)
	if common.File(p.Square(common.Pawn, strongSide)) >= common.FileE {
		sq = common.MirrorSquare(sq)
	}
	if !strongSide {
		sq = common.FlipSquare(sq)
	}
	return sq
}
