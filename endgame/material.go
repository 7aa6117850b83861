package endgame

import (
	"fmt"
	"strings"

	"zugzwang/common"
)

// Key is an order-independent material signature: the exact piece counts of
// both colors packed into an integer. Two positions with the same Key hold
// the same material and are handled by the same registry entry.
type Key uint64

// 4 bits per count, pawn..queen for white then black. Kings are implied.
func keyFromCounts(white, black [common.King + 1]int) Key {
	var k Key
	for pt := common.Pawn; pt <= common.Queen; pt++ {
		k |= Key(white[pt]) << uint(4*(pt-common.Pawn))
		k |= Key(black[pt]) << uint(4*(pt-common.Pawn)+20)
	}
	return k
}

// MaterialKey computes the signature of a position. Pure function of piece
// counts, so it can be cached by the caller alongside its material entry.
func MaterialKey(p *common.Position) Key {
	var white, black [common.King + 1]int
	for pt := common.Pawn; pt <= common.Queen; pt++ {
		white[pt] = p.Count(pt, true)
		black[pt] = p.Count(pt, false)
	}
	return keyFromCounts(white, black)
}

// parseCode splits an endgame code like "KRPPKRP" into the strong and weak
// side piece counts. The first half, up to the second 'K', belongs to the
// strong side.
func parseCode(code string) (strong, weak [common.King + 1]int, err error) {
	const pieceLetters = "PNBRQK"
	if !strings.HasPrefix(code, "K") {
		return strong, weak, fmt.Errorf("bad endgame code %v", code)
	}
	var split = strings.Index(code[1:], "K")
	if split < 0 {
		return strong, weak, fmt.Errorf("bad endgame code %v", code)
	}
	split++
	for i, half := range []string{code[1:split], code[split+1:]} {
		for _, ch := range half {
			var pt = strings.IndexRune(pieceLetters, ch)
			if pt < 0 || pt+common.Pawn == common.King {
				return strong, weak, fmt.Errorf("bad endgame code %v", code)
			}
			if i == 0 {
				strong[pt+common.Pawn]++
			} else {
				weak[pt+common.Pawn]++
			}
		}
	}
	return strong, weak, nil
}
