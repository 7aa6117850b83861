package endgame

import "zugzwang/common"

// Exact-value evaluators. Each one assumes the position's material matches
// the signature it was registered for and returns a score from the side to
// move's point of view.

// KR vs KP. The rook wins easily when the strong king stays near the pawn.
func evalKRKP(p *common.Position, strongSide bool) int {
	var wksq = common.RelativeSquare(strongSide, p.KingSquare(strongSide))
	var psq = common.RelativeSquare(strongSide, p.Square(common.Pawn, !strongSide))

	var result = rookValueEg - dist[wksq][psq]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KR vs KB. Push the defending king into a corner.
func evalKRKB(p *common.Position, strongSide bool) int {
	var winnerKSq = p.KingSquare(strongSide)
	var loserKSq = p.KingSquare(!strongSide)

	var result = rookValueEg - bishopValueEg +
		pushToEdges[loserKSq] +
		pushClose[dist[winnerKSq][loserKSq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KR vs KN. The material edge alone is not enough; winning chances grow
// when the defending knight strays from its king.
func evalKRKN(p *common.Position, strongSide bool) int {
	var bksq = p.KingSquare(!strongSide)
	var bnsq = p.Square(common.Knight, !strongSide)

	var result = pushToEdges[bksq] + pushAway[dist[bksq][bnsq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KN vs KB. Drawish.
func evalKNKB(p *common.Position, strongSide bool) int {
	var wksq = p.KingSquare(strongSide)
	var wnsq = p.Square(common.Knight, strongSide)
	var bksq = p.KingSquare(!strongSide)
	var bbsq = p.Square(common.Bishop, !strongSide)

	var result = pushToEdges[bbsq] +
		pushClose[dist[wksq][bbsq]] +
		pushClose[dist[wnsq][bbsq]] +
		pushAway[dist[bksq][bbsq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KQ vs KP. King and queen must coordinate against the pawn.
func evalKQKP(p *common.Position, strongSide bool) int {
	var winnerKSq = p.KingSquare(strongSide)
	var queenSq = p.Square(common.Queen, strongSide)
	var pawnSq = p.Square(common.Pawn, !strongSide)

	var result = queenValueEg +
		pushClose[dist[winnerKSq][pawnSq]] +
		pushClose[dist[winnerKSq][queenSq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KR vs KQ.
func evalKRKQ(p *common.Position, strongSide bool) int {
	var winnerKSq = p.KingSquare(strongSide)
	var loserKSq = p.KingSquare(!strongSide)

	var result = rookValueEg - queenValueEg +
		pushToEdges[loserKSq] +
		pushClose[dist[winnerKSq][loserKSq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KQQ vs KQ. A known win when the three queens do not span both square
// shades.
func evalKQQKQ(p *common.Position, strongSide bool) int {
	var wksq = p.KingSquare(strongSide)
	var bksq = p.KingSquare(!strongSide)
	var bqsq = p.Square(common.Queen, !strongSide)

	var result = pushToEdges[bqsq] +
		pushToEdges[bksq] +
		pushClose[dist[wksq][bqsq]] +
		pushAway[dist[bksq][bqsq]]

	if (p.Queens&common.DarkSquares) == 0 ||
		(p.Queens & ^common.DarkSquares) == 0 {
		result += valueKnownWin
	}

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}

// KP vs KP. A pure king-race heuristic over the normalized board: each king
// is rewarded for closing in on the enemy pawn.
func evalKPKP(p *common.Position, strongSide bool) int {
	var wksq = normalize(p, strongSide, p.KingSquare(strongSide))
	var bksq = normalize(p, strongSide, p.KingSquare(!strongSide))
	var wpsq = normalize(p, strongSide, p.Square(common.Pawn, strongSide))
	var bpsq = normalize(p, strongSide, p.Square(common.Pawn, !strongSide))

	var result = pushClose[dist[wksq][bpsq]] - pushClose[dist[bksq][wpsq]]

	if p.WhiteMove != strongSide {
		result = -result
	}
	return result
}
