package main

import (
	"bufio"
	"os"
	"strings"
)

// One position per recognized endgame, plus one the registry should skip.
var endgameFens = []string{
	// KRKP
	"8/8/8/8/1k6/8/4p3/R2K4 w - - 0 1",
	// KRKB
	"8/8/8/4b3/8/2k5/8/R3K3 w - - 0 1",
	// KRKN
	"8/8/3n4/8/8/2k5/8/R3K3 w - - 0 1",
	// KNKB
	"8/8/3b4/8/8/2k5/8/N3K3 w - - 0 1",
	// KQKP
	"8/8/8/8/8/2k5/4p3/Q3K3 w - - 0 1",
	// KRKQ
	"8/8/3q4/8/8/2k5/8/R3K3 w - - 0 1",
	// KPKP
	"8/8/4k3/4p3/8/4P3/4K3/8 w - - 0 1",
	// KQQKQ
	"8/8/3q4/8/8/2k5/8/Q2QK3 w - - 0 1",
	// KRPKR
	"8/8/8/5r2/8/2k5/4P3/R3K3 w - - 0 1",
	// KRPPKRP
	"8/8/8/5r2/2kp4/8/3PP3/R3K3 w - - 0 1",
	// KRKR, not in the registry
	"8/8/3r4/8/8/2k5/8/R3K3 w - - 0 1",
}

func loadFens(path string) ([]string, error) {
	var file, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []string
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = scanner.Text()
		// EPD operations after the position are not needed here
		if index := strings.Index(line, ";"); index >= 0 {
			line = line[:index]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result, scanner.Err()
}
