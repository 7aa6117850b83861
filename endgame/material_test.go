package endgame

import (
	"testing"

	"zugzwang/common"
)

func TestParseCode(t *testing.T) {
	var strong, weak, err = parseCode("KRPPKRP")
	if err != nil {
		t.Fatal(err)
	}
	if strong[common.Rook] != 1 || strong[common.Pawn] != 2 {
		t.Error("strong side counts", strong)
	}
	if weak[common.Rook] != 1 || weak[common.Pawn] != 1 {
		t.Error("weak side counts", weak)
	}

	for _, code := range []string{"", "K", "RK", "KR", "KRX", "KKK", "KRKK"} {
		if _, _, err := parseCode(code); err == nil {
			t.Error("expected error", code)
		}
	}
}

func TestKeyFromCounts(t *testing.T) {
	var strong, weak, err = parseCode("KRKP")
	if err != nil {
		t.Fatal(err)
	}
	var p = mustPosition(t, "8/8/8/8/1k6/8/4p3/R2K4 w - - 0 1")
	if MaterialKey(&p) != keyFromCounts(strong, weak) {
		t.Error("registered key should match the position's key")
	}
	if keyFromCounts(strong, weak) == keyFromCounts(weak, strong) {
		t.Error("colorings should not collide")
	}
}
