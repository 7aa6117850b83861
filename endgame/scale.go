package endgame

import "zugzwang/common"

// Scale-factor evaluators for drawish material balances. They never return
// a score, only a factor in [ScaleDraw, ScaleNone].

// KRP vs KR is treated as categorically drawn. Finer rook-endgame theory
// (Philidor, Lucena and friends) is deliberately not modelled here.
func scaleKRPKR(p *common.Position, strongSide bool) int {
	return ScaleDraw
}

// KRPP vs KRP. A single rule: when the stronger side has no passed pawn and
// the defending king stands in front of both pawns, the position is drawish
// to a degree that depends on how far the pawns have advanced.
func scaleKRPPKRP(p *common.Position, strongSide bool) int {
	var pawns = p.Pieces(common.Pawn, strongSide)
	var wpsq1 = common.FirstOne(pawns)
	var wpsq2 = common.FirstOne(pawns & (pawns - 1))
	var bksq = p.KingSquare(!strongSide)

	if p.PawnPassed(strongSide, wpsq1) || p.PawnPassed(strongSide, wpsq2) {
		return ScaleNone
	}

	var r = common.Max(
		common.RelativeRank(strongSide, wpsq1),
		common.RelativeRank(strongSide, wpsq2))

	if common.FileDistance(bksq, wpsq1) <= 1 &&
		common.FileDistance(bksq, wpsq2) <= 1 &&
		common.RelativeRank(strongSide, bksq) > r {
		assertRankInside(r)
		return krppkrpScaleFactors[r]
	}
	return ScaleNone
}
