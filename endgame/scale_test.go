package endgame

import (
	"testing"

	"zugzwang/common"
)

// KRP vs KR is drawn no matter where the pieces stand.
func TestKRPKRAlwaysDrawn(t *testing.T) {
	var r = NewRegistry()
	var fens = []string{
		"8/8/8/5r2/8/2k5/4P3/R3K3 w - - 0 1",
		"8/5r2/8/8/8/1k6/1P6/1R2K3 w - - 0 1",
		"r7/8/8/8/6P1/8/2k5/4K2R b - - 0 1",
	}
	for _, fen := range fens {
		var p = mustPosition(t, fen)
		var entry = mustProbe(t, r, &p)
		if entry.Name() != "KRPKR" || !entry.IsScale() {
			t.Fatal("wrong entry", fen)
		}
		if got := entry.Scale(&p); got != ScaleDraw {
			t.Error(fen, got)
		}
		// same with colors reversed
		var m = common.MirrorPosition(&p)
		if got := mustProbe(t, r, &m).Scale(&m); got != ScaleDraw {
			t.Error("mirror", fen, got)
		}
	}
}

// A passed pawn means real winning chances: no scaling, regardless of the
// defending king.
func TestKRPPKRPPassedPawn(t *testing.T) {
	var r = NewRegistry()
	var fens = []string{
		// passed pawn on b6
		"8/8/1P6/5r1p/8/2k5/4P3/R3K3 w - - 0 1",
		// passed pawn on g6
		"8/8/6P1/5r1p/8/2k5/4P3/R3K3 w - - 0 1",
	}
	for _, fen := range fens {
		var p = mustPosition(t, fen)
		var entry = mustProbe(t, r, &p)
		if entry.Name() != "KRPPKRP" {
			t.Fatal("wrong entry", fen)
		}
		if got := entry.Scale(&p); got != ScaleNone {
			t.Error(fen, got)
		}
	}
}

func TestKRPPKRPDrawish(t *testing.T) {
	var r = NewRegistry()
	tests := []struct {
		name string
		fen  string
		want int
	}{
		// king in front of the pawns on the fourth rank
		{"pawns on rank 4", "7r/8/3k4/4p3/3PP3/8/8/R3K3 w - - 0 1", krppkrpScaleFactors[common.Rank4]},
		// more advanced pawns are scaled down less
		{"pawns on rank 5", "7r/3k4/4p3/3PP3/8/8/8/R3K3 w - - 0 1", krppkrpScaleFactors[common.Rank5]},
		// king too far to the side: no scaling
		{"king off the pawns", "8/8/8/5r2/2kp4/8/3PP3/R3K3 w - - 0 1", ScaleNone},
		// king behind the pawns instead of in front: no scaling
		{"king behind the pawns", "7r/8/8/4p3/3PP3/3k4/8/R3K3 w - - 0 1", ScaleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p = mustPosition(t, tt.fen)
			var entry = mustProbe(t, r, &p)
			if entry.Name() != "KRPPKRP" {
				t.Fatal("wrong entry")
			}
			if got := entry.Scale(&p); got != tt.want {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
		})
	}
}

// Scale factors are factors, never scores.
func TestScaleFactorRange(t *testing.T) {
	var r = NewRegistry()
	var fens = []string{
		"8/8/8/5r2/8/2k5/4P3/R3K3 w - - 0 1",
		"8/8/1P6/5r1p/8/2k5/4P3/R3K3 w - - 0 1",
		"7r/8/3k4/4p3/3PP3/8/8/R3K3 w - - 0 1",
		"7r/3k4/4p3/3PP3/8/8/8/R3K3 w - - 0 1",
		"8/8/8/5r2/2kp4/8/3PP3/R3K3 b - - 0 1",
	}
	for _, fen := range fens {
		var p = mustPosition(t, fen)
		var entry = mustProbe(t, r, &p)
		if !entry.IsScale() {
			t.Fatal("expected a scale entry", fen)
		}
		var got = entry.Scale(&p)
		if got < ScaleDraw || got > ScaleNone {
			t.Error(fen, got)
		}
	}
}
