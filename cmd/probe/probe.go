package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"zugzwang/common"
	"zugzwang/endgame"

	"golang.org/x/sync/errgroup"
)

type probeResult struct {
	fen   string
	name  string
	scale bool
	score int
}

func probeHandler(path string, threads int) error {
	logger.Println("probe started",
		"input", path,
		"threads", threads)
	defer logger.Println("probe finished")

	var fens = endgameFens
	if path != "" {
		var err error
		fens, err = loadFens(path)
		if err != nil {
			return err
		}
	}

	var registry = endgame.NewRegistry()

	g, ctx := errgroup.WithContext(context.Background())

	var jobs = make(chan string, 128)
	var results = make(chan probeResult, 128)

	g.Go(func() error {
		defer close(jobs)
		for _, fen := range fens {
			select {
			case jobs <- fen:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return probeFens(registry, jobs, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var counts = make(map[string]int)
	var misses = 0
	g.Go(func() error {
		for res := range results {
			if res.name == "" {
				misses++
				continue
			}
			counts[res.name]++
			if res.scale {
				fmt.Printf("%-8v scale %3v %v\n", res.name, res.score, res.fen)
			} else {
				fmt.Printf("%-8v value %6v %v\n", res.name, res.score, res.fen)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	var names = make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name, counts[name])
	}
	fmt.Println("recognized", len(fens)-misses, "of", len(fens))
	return nil
}

func probeFens(registry *endgame.Registry,
	jobs <-chan string, results chan<- probeResult) error {
	for fen := range jobs {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		var res = probeResult{fen: fen}
		if entry, found := registry.Probe(&p); found {
			res.name = entry.Name()
			res.scale = entry.IsScale()
			if entry.IsScale() {
				res.score = entry.Scale(&p)
			} else {
				res.score = entry.Evaluate(&p)
			}
		}
		results <- res
	}
	return nil
}
