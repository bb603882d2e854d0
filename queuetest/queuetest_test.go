// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queuetest

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ava-labs/linkedq/queue"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

func TestRandomOpsMatchesModel(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)
	q := queue.New(1, 2, 3)

	model := RandomOps(t, q, Config{
		Ops:  500,
		Seed: 42,
		Log:  rec,
	})

	assert.Equal(t, q.ToSlice(), append([]int{}, model...), "final queue contents")
	assert.Empty(t, rec.AtLeast(logging.Warn), "divergences logged")
	assert.NotEmpty(t, rec.At(logging.Debug), "operations logged")
}

func TestRandomOpsReportsCheckFailures(t *testing.T) {
	rec := NewLogRecorder(logging.Warn)
	errCheck := errors.New("always fails")

	const n = 10
	RandomOps(t, new(queue.Queue[int]), Config{
		Ops: n,
		Log: rec,
		Check: func(*queue.Queue[int]) error {
			return errCheck
		},
	})

	got := rec.At(logging.Error)
	require.Len(t, got, n, "Error logs; one per operation")
	for _, r := range got {
		assert.Equal(t, "Check()", r.Msg)
	}
	assert.Empty(t, rec.At(logging.Debug), "Debug logs below recorder level")
}

func TestLogRecorderWith(t *testing.T) {
	rec := NewLogRecorder(logging.Info)
	rec.With(zap.Int("a", 1)).Info("hello", zap.Int("b", 2))
	rec.Debug("filtered")

	require.Len(t, rec.Records, 1, "Records")
	r := rec.Records[0]
	assert.Equal(t, logging.Info, r.Level, "Level")
	assert.Equal(t, "hello", r.Msg, "Msg")
	assert.Equal(t, []zap.Field{zap.Int("a", 1), zap.Int("b", 2)}, r.Fields, "Fields")
}

func TestTBLogger(t *testing.T) {
	log := NewTBLogger(t, logging.Debug)
	log.Debug("debug entry", zap.String("via", "testing.TB.Logf"))
	log.With(zap.Int("n", 1)).Info("info entry")
}
