// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queuetest

import (
	"runtime"
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sink receives every log entry that passes a [logger]'s level filter.
type sink interface {
	write(logging.Level, string, []zap.Field)
}

// logger plumbs all levels into a [sink], prepending fields added with
// [logger.With].
type logger struct {
	level logging.Level
	sink  sink
	with  []zap.Field
	// Unimplemented methods panic instead of silently dropping entries, which
	// would be the case if embedding a [logging.NoLog].
	logging.Logger
}

var _ logging.Logger = (*logger)(nil)

func (l *logger) With(fields ...zap.Field) logging.Logger {
	return &logger{
		level: l.level,
		sink:  l.sink,
		with:  slices.Concat(l.with, fields),
	}
}

func (l *logger) Enabled(lvl logging.Level) bool {
	return lvl >= l.level
}

func (l *logger) log(lvl logging.Level, msg string, fields ...zap.Field) {
	if !l.Enabled(lvl) {
		return
	}
	l.sink.write(lvl, msg, slices.Concat(l.with, fields))
}

func (l *logger) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs...) }
func (l *logger) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs...) }
func (l *logger) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs...) }
func (l *logger) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs...) }
func (l *logger) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs...) }
func (l *logger) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs...) }
func (l *logger) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs...) }

// A LogRecorder is a [logging.Logger] that stores all logs as [LogRecord]
// entries for inspection.
type LogRecorder struct {
	logging.Logger
	Records []*LogRecord
}

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	r := new(LogRecorder)
	r.Logger = &logger{
		level: level,
		sink:  (*recorderSink)(r),
	}
	return r
}

type recorderSink LogRecorder

func (s *recorderSink) write(lvl logging.Level, msg string, fields []zap.Field) {
	s.Records = append(s.Records, &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: fields,
	})
}

// At returns all recorded logs at the specified [logging.Level].
func (r *LogRecorder) At(lvl logging.Level) []*LogRecord {
	var out []*LogRecord
	for _, rec := range r.Records {
		if rec.Level == lvl {
			out = append(out, rec)
		}
	}
	return out
}

// AtLeast returns all recorded logs at or above the specified [logging.Level].
func (r *LogRecorder) AtLeast(lvl logging.Level) []*LogRecord {
	var out []*LogRecord
	for _, rec := range r.Records {
		if rec.Level >= lvl {
			out = append(out, rec)
		}
	}
	return out
}

// NewTBLogger constructs a [logging.Logger] that propagates logs to
// [testing.TB]. WARN and ERROR logs are sent to [testing.TB.Errorf] while FATAL
// is sent to [testing.TB.Fatalf]. All other logs are sent to
// [testing.TB.Logf]. The level is silently capped at [logging.Warn] so that
// failures are never filtered out.
//
//nolint:thelper // The outputs include the logging site while the TB site is most useful if here
func NewTBLogger(tb testing.TB, level logging.Level) logging.Logger {
	return &logger{
		level: min(level, logging.Warn),
		sink:  tbSink{tb},
	}
}

type tbSink struct {
	tb testing.TB
}

func (s tbSink) write(lvl logging.Level, msg string, fields []zap.Field) {
	var to func(string, ...any)
	switch {
	case lvl == logging.Warn || lvl == logging.Error:
		to = s.tb.Errorf
	case lvl >= logging.Fatal:
		to = s.tb.Fatalf
	default:
		to = s.tb.Logf
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	// write <- logger.log <- logger.{Level} <- caller
	_, file, line, _ := runtime.Caller(3)
	to("[Log@%s] %s %v - %s:%d", lvl, msg, enc.Fields, file, line)
}
