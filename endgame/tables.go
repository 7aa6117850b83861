package endgame

import "zugzwang/common"

// Endgame piece values. These also act as tuning constants for the
// specialized evaluators, so they are kept apart from any generic
// evaluation weights.
const (
	pawnValueEg   = 258
	knightValueEg = 846
	bishopValueEg = 857
	rookValueEg   = 1270
	queenValueEg  = 2521

	valueKnownWin = 10000
)

// Scale factors returned by drawish-endgame entries. The caller applies
// them to its own evaluation: result*factor/ScaleNormal, with ScaleNone
// meaning the position is not scaled at all.
const (
	ScaleDraw   = 0
	ScaleNormal = 64
	ScaleNone   = 255
)

// pushToEdges drives the defending king (or piece) towards the rim.
var pushToEdges = [64]int{
	100, 90, 80, 70, 70, 80, 90, 100,
	90, 70, 60, 50, 50, 60, 70, 90,
	80, 60, 40, 30, 30, 40, 60, 80,
	70, 50, 30, 20, 20, 30, 50, 70,
	70, 50, 30, 20, 20, 30, 50, 70,
	80, 60, 40, 30, 30, 40, 60, 80,
	90, 70, 60, 50, 50, 60, 70, 90,
	100, 90, 80, 70, 70, 80, 90, 100,
}

// pushClose/pushAway reward two pieces standing close together or far
// apart, indexed by Chebyshev distance. Hand-tuned curves, not formulas.
var pushClose = [8]int{0, 0, 100, 80, 60, 40, 20, 10}
var pushAway = [8]int{0, 5, 20, 40, 60, 80, 90, 100}

// krppkrpScaleFactors is indexed by the relative rank of the most advanced
// strong pawn in the KRPP vs KRP endgame.
var krppkrpScaleFactors = [8]int{0, 9, 10, 14, 21, 44, 0, 0}

var dist [64][64]int

func init() {
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			dist[i][j] = common.SquareDistance(i, j)
		}
	}
}
