// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queuetest provides utilities for testing [queue.Queue] and code that
// uses it.
package queuetest

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"

	"github.com/ava-labs/linkedq/queue"
)

// Config configures [RandomOps].
type Config struct {
	// Ops is the number of operations to perform. Defaults to 1000.
	Ops int
	// Seed seeds the PCG source from which operations are drawn.
	Seed uint64
	// MaxValue bounds pushed values to `[0,MaxValue)`. Small values increase
	// the chance of duplicates, which matters for removal. Defaults to 16.
	MaxValue int
	// Log receives a Debug entry for every operation and an Error entry for
	// every divergence from the model. Defaults to [NewTBLogger] at
	// [logging.Warn].
	Log logging.Logger
	// Check, if non-nil, is called after every operation. Any returned error is
	// logged as a divergence.
	Check func(*queue.Queue[int]) error
}

func (c *Config) withDefaults(tb testing.TB) Config {
	cfg := *c
	if cfg.Ops == 0 {
		cfg.Ops = 1000
	}
	if cfg.MaxValue == 0 {
		cfg.MaxValue = 16
	}
	if cfg.Log == nil {
		cfg.Log = NewTBLogger(tb, logging.Warn)
	}
	return cfg
}

// An op is a single operation performed on both the [queue.Queue] under test
// and on the slice model, which is returned after modification.
type op struct {
	name string
	// weight is the relative likelihood of the op being chosen.
	weight int
	run    func(*runner, []int) []int
}

var ops = []op{
	{"Push", 8, (*runner).push},
	{"Pop", 4, (*runner).pop},
	{"Front", 1, (*runner).front},
	{"Back", 1, (*runner).back},
	{"Remove", 2, (*runner).remove},
	{"RemoveAll", 1, (*runner).removeAll},
	{"Clear", 1, func(r *runner, _ []int) []int {
		r.q.Clear()
		return nil
	}},
	{"ToSlice", 1, func(_ *runner, m []int) []int { return m }},
	{"Traverse", 2, (*runner).traverse},
	{"Clone", 1, (*runner).clone},
}

// RandomOps performs a reproducible, pseudo-random sequence of operations on
// `q`, mirroring each of them on a slice and reporting any divergence in the
// returned values or the resulting queue contents. It returns the final model,
// which SHOULD equal `q.ToSlice()`.
func RandomOps(tb testing.TB, q *queue.Queue[int], c Config) []int {
	tb.Helper()
	cfg := c.withDefaults(tb)

	r := &runner{
		q:   q,
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), //nolint:gosec // Reproducibility is useful in tests
	}

	var total int
	for _, o := range ops {
		total += o.weight
	}

	model := q.ToSlice()
	for i := range cfg.Ops {
		o := r.choose(total)
		r.log = cfg.Log.With(zap.Int("step", i), zap.String("op", o.name))
		model = o.run(r, model)
		r.check(model)
	}
	return model
}

type runner struct {
	q   *queue.Queue[int]
	cfg Config
	rng *rand.Rand
	log logging.Logger
}

func (r *runner) choose(total int) op {
	w := r.rng.IntN(total)
	for _, o := range ops {
		if w < o.weight {
			return o
		}
		w -= o.weight
	}
	panic("unreachable")
}

func (r *runner) value() int {
	return r.rng.IntN(r.cfg.MaxValue)
}

func (r *runner) divergence(msg string, fields ...zap.Field) {
	r.log.Error(msg, fields...)
}

func (r *runner) check(model []int) {
	if diff := cmp.Diff(model, r.q.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
		r.divergence("Queue contents diverged from model", zap.String("diff (-model +queue)", diff))
	}
	if got, want := r.q.Len(), len(model); got != want {
		r.divergence("Len()", zap.Int("got", got), zap.Int("want", want))
	}
	if got, want := r.q.Empty(), len(model) == 0; got != want {
		r.divergence("Empty()", zap.Bool("got", got), zap.Bool("want", want))
	}
	if r.cfg.Check == nil {
		return
	}
	if err := r.cfg.Check(r.q); err != nil {
		r.divergence("Check()", zap.Error(err))
	}
}

func (r *runner) expect(method string, got int, gotOK bool, want int, wantOK bool) {
	if got != want || gotOK != wantOK {
		r.divergence(
			method,
			zap.Int("got", got), zap.Bool("got_ok", gotOK),
			zap.Int("want", want), zap.Bool("want_ok", wantOK),
		)
	}
}

func (r *runner) push(model []int) []int {
	x := r.value()
	r.log.Debug("Pushing", zap.Int("value", x))
	r.q.Push(x)

	got, ok := r.q.Back()
	r.expect("Back() after Push()", got, ok, x, true)
	return append(model, x)
}

func (r *runner) pop(model []int) []int {
	got, ok := r.q.Pop()
	r.log.Debug("Popped", zap.Int("value", got), zap.Bool("ok", ok))
	if len(model) == 0 {
		r.expect("Pop()", got, ok, 0, false)
		return model
	}
	r.expect("Pop()", got, ok, model[0], true)
	return model[1:]
}

func (r *runner) front(model []int) []int {
	got, ok := r.q.Front()
	if len(model) == 0 {
		r.expect("Front()", got, ok, 0, false)
	} else {
		r.expect("Front()", got, ok, model[0], true)
	}
	return model
}

func (r *runner) back(model []int) []int {
	got, ok := r.q.Back()
	if len(model) == 0 {
		r.expect("Back()", got, ok, 0, false)
	} else {
		r.expect("Back()", got, ok, model[len(model)-1], true)
	}
	return model
}

func (r *runner) remove(model []int) []int {
	x := r.value()
	got := queue.Remove(r.q, x)
	r.log.Debug("Removed", zap.Int("value", x), zap.Bool("found", got))

	i := slices.Index(model, x)
	if want := i >= 0; got != want {
		r.divergence("Remove()", zap.Int("value", x), zap.Bool("got", got), zap.Bool("want", want))
	}
	if i < 0 {
		return model
	}
	return slices.Delete(model, i, i+1)
}

func (r *runner) removeAll(model []int) []int {
	x := r.value()
	got := queue.RemoveAll(r.q, x)
	r.log.Debug("Removed all", zap.Int("value", x), zap.Int("count", got))

	before := len(model)
	model = slices.DeleteFunc(model, func(y int) bool { return y == x })
	if want := before - len(model); got != want {
		r.divergence("RemoveAll()", zap.Int("value", x), zap.Int("got", got), zap.Int("want", want))
	}
	return model
}

// traverse exercises every read-only traversal against a random threshold,
// without modifying the queue.
func (r *runner) traverse(model []int) []int {
	threshold := r.value()
	above := func(x, _ int) bool { return x >= threshold }
	r.log.Debug("Traversing", zap.Int("threshold", threshold))

	if got, want := r.q.Some(above), slices.ContainsFunc(model, func(x int) bool { return x >= threshold }); got != want {
		r.divergence("Some()", zap.Bool("got", got), zap.Bool("want", want))
	}
	if got, want := r.q.Every(above), !slices.ContainsFunc(model, func(x int) bool { return x < threshold }); got != want {
		r.divergence("Every()", zap.Bool("got", got), zap.Bool("want", want))
	}

	var wantFiltered []int
	for _, x := range model {
		if x >= threshold {
			wantFiltered = append(wantFiltered, x)
		}
	}
	if diff := cmp.Diff(wantFiltered, r.q.Filter(above), cmpopts.EquateEmpty()); diff != "" {
		r.divergence("Filter()", zap.String("diff (-want +got)", diff))
	}

	wantMapped := make([]int, len(model))
	for i, x := range model {
		wantMapped[i] = x*2 + i
	}
	gotMapped := queue.Map(r.q, func(x, i int) int { return x*2 + i })
	if diff := cmp.Diff(wantMapped, gotMapped, cmpopts.EquateEmpty()); diff != "" {
		r.divergence("Map()", zap.String("diff (-want +got)", diff))
	}

	wantIdx := slices.IndexFunc(model, func(x int) bool { return x >= threshold })
	gotIdx, ok := queue.ForEach(r.q, func(x, i int) (int, bool) {
		return i, x >= threshold
	})
	if !ok {
		gotIdx = -1
	}
	if gotIdx != wantIdx {
		r.divergence("ForEach() stopping index", zap.Int("got", gotIdx), zap.Int("want", wantIdx))
	}
	return model
}

func (r *runner) clone(model []int) []int {
	c := r.q.Clone()
	if diff := cmp.Diff(model, c.ToSlice(), cmpopts.EquateEmpty()); diff != "" {
		r.divergence("Clone()", zap.String("diff (-model +clone)", diff))
	}
	// Modifying the clone MUST NOT affect `r.q`, which [runner.check] confirms.
	c.Push(r.cfg.MaxValue)
	c.Clear()
	return model
}
