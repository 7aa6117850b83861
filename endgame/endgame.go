// Package endgame supplies closed-form evaluators for a small set of
// well-understood material configurations, keyed by material signature.
// Everything here is immutable after NewRegistry, so any number of search
// threads may probe and evaluate concurrently.
package endgame

import "zugzwang/common"

type valueFunc func(p *common.Position, strongSide bool) int
type scaleFunc func(p *common.Position, strongSide bool) int

// Entry binds a material signature to its evaluator and to the strong side:
// the color whose pieces form the first half of the endgame code. Exactly
// one of the two evaluator families is set.
type Entry struct {
	name       string
	key        Key
	strongSide bool
	value      valueFunc
	scale      scaleFunc
}

func (e *Entry) Name() string { return e.name }

// StrongSide reports which color plays the attacking role, white=true.
func (e *Entry) StrongSide() bool { return e.strongSide }

// IsScale reports whether the entry belongs to the scale-factor family.
// When true the caller must use Scale and blend the factor into its own
// evaluation; Evaluate is only valid otherwise.
func (e *Entry) IsScale() bool { return e.scale != nil }

// Evaluate returns an exact score from the side to move's point of view.
// The position's material must match the entry's signature.
func (e *Entry) Evaluate(p *common.Position) int {
	assertFamily(e, false)
	assertMaterial(p, e)
	return e.value(p, e.strongSide)
}

// Scale returns a factor in [ScaleDraw, ScaleNone] dampening an externally
// computed evaluation. The position's material must match the entry's
// signature.
func (e *Entry) Scale(p *common.Position) int {
	assertFamily(e, true)
	assertMaterial(p, e)
	return e.scale(p, e.strongSide)
}

// Registry maps material signatures to endgame entries. Each endgame code
// is registered under both colorings, so a probe works no matter which
// color holds the strong material.
type Registry struct {
	entries map[Key]*Entry
}

func NewRegistry() *Registry {
	var r = &Registry{entries: make(map[Key]*Entry)}

	r.addValue("KRKP", evalKRKP)
	r.addValue("KRKB", evalKRKB)
	r.addValue("KRKN", evalKRKN)
	r.addValue("KNKB", evalKNKB)
	r.addValue("KQKP", evalKQKP)
	r.addValue("KRKQ", evalKRKQ)
	r.addValue("KPKP", evalKPKP)
	r.addValue("KQQKQ", evalKQQKQ)

	r.addScale("KRPKR", scaleKRPKR)
	r.addScale("KRPPKRP", scaleKRPPKRP)

	return r
}

// Probe looks up the entry for the position's material, if any.
func (r *Registry) Probe(p *common.Position) (*Entry, bool) {
	return r.Lookup(MaterialKey(p))
}

// Lookup finds the entry for a precomputed material signature.
func (r *Registry) Lookup(key Key) (*Entry, bool) {
	var entry, found = r.entries[key]
	return entry, found
}

func (r *Registry) addValue(code string, fn valueFunc) {
	r.add(code, fn, nil)
}

func (r *Registry) addScale(code string, fn scaleFunc) {
	r.add(code, nil, fn)
}

func (r *Registry) add(code string, value valueFunc, scale scaleFunc) {
	var strong, weak, err = parseCode(code)
	if err != nil {
		panic(err)
	}
	// strong side as white, then as black; for symmetric material both
	// colorings collapse to the same key and white keeps the role
	for _, strongSide := range []bool{true, false} {
		var key Key
		if strongSide {
			key = keyFromCounts(strong, weak)
		} else {
			key = keyFromCounts(weak, strong)
		}
		if _, found := r.entries[key]; found {
			continue
		}
		r.entries[key] = &Entry{
			name:       code,
			key:        key,
			strongSide: strongSide,
			value:      value,
			scale:      scale,
		}
	}
}
