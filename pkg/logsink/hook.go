package logsink

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/internet-of-plants/iop/pkg/api"
	"github.com/internet-of-plants/iop/pkg/model"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// LogReporter is the part of the API client logs are shipped through.
type LogReporter interface {
	RegisterLog(ctx context.Context, token model.AuthToken, text string) api.NetworkStatus
}

type line struct {
	seq  uint64
	text string
}

// Hook keeps the most recent log lines, up to capacity bytes, until they are
// flushed to the server. Lines logged while a flush is in flight are not kept,
// so the reporter's own logs never loop back.
type Hook struct {
	capacity  int
	batchSize int
	levels    []logrus.Level
	formatter logrus.Formatter
	limiter   *rate.Limiter

	mtx     sync.Mutex
	lines   []line
	size    int
	seq     uint64
	dropped int

	flushing atomic.Bool
}

type Option func(*Hook)

// WithRate limits how often Flush reaches the server.
func WithRate(limit rate.Limit, burst int) Option {
	return func(h *Hook) {
		h.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithBatchSize bounds how many bytes a single flush sends. It must match the
// log budget of the API client.
func WithBatchSize(size int) Option {
	return func(h *Hook) {
		h.batchSize = size
	}
}

func WithLevels(levels ...logrus.Level) Option {
	return func(h *Hook) {
		h.levels = levels
	}
}

func NewHook(capacity int, opts ...Option) *Hook {
	h := &Hook{
		capacity:  capacity,
		batchSize: api.DefaultLogBudget,
		levels:    logrus.AllLevels,
		formatter: &logrus.TextFormatter{DisableColors: true, DisableTimestamp: true},
		limiter:   rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	if h.flushing.Load() {
		return nil
	}

	raw, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mtx.Lock()
	defer h.mtx.Unlock()

	if len(raw) > h.capacity || len(raw) > h.batchSize {
		h.dropped++
		return nil
	}

	h.seq++
	h.lines = append(h.lines, line{seq: h.seq, text: string(raw)})
	h.size += len(raw)
	for h.size > h.capacity {
		h.size -= len(h.lines[0].text)
		h.lines = h.lines[1:]
		h.dropped++
	}
	return nil
}

// Pending returns the number of bytes waiting for a flush.
func (h *Hook) Pending() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.size
}

// Dropped returns how many lines were lost to the capacity so far.
func (h *Hook) Dropped() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.dropped
}

// Flush ships the oldest pending lines that fit the batch size in one
// RegisterLog call. Nothing is sent when there is nothing pending or the rate
// limit is exhausted. Lines are kept for the next flush unless the server took
// them or they can never fit a request.
func (h *Hook) Flush(ctx context.Context, reporter LogReporter, token model.AuthToken) api.NetworkStatus {
	h.mtx.Lock()
	if len(h.lines) == 0 || !h.limiter.Allow() {
		h.mtx.Unlock()
		return api.StatusOK
	}
	pending := h.batch()
	h.mtx.Unlock()

	text := strings.Join(lo.Map(pending, func(l line, _ int) string { return l.text }), "")
	last := pending[len(pending)-1].seq

	h.flushing.Store(true)
	status := reporter.RegisterLog(ctx, token, text)
	h.flushing.Store(false)

	switch status {
	case api.StatusOK:
		h.mtx.Lock()
		h.drop(last)
		h.mtx.Unlock()
	case api.StatusClientBufferOverflow:
		h.mtx.Lock()
		h.dropped += h.drop(last)
		h.mtx.Unlock()
	case api.StatusForbidden, api.StatusConnectionIssues, api.StatusBrokenServer, api.StatusMustUpgrade:
	}
	return status
}

// batch returns the oldest lines whose total size fits the batch size. Fire
// never keeps a line larger than that, so the batch is never empty.
func (h *Hook) batch() []line {
	size := 0
	for i, l := range h.lines {
		size += len(l.text)
		if size > h.batchSize {
			return h.lines[:i]
		}
	}
	return h.lines
}

// drop forgets every line up to seq and returns how many there were.
func (h *Hook) drop(seq uint64) int {
	i := 0
	for i < len(h.lines) && h.lines[i].seq <= seq {
		h.size -= len(h.lines[i].text)
		i++
	}
	h.lines = h.lines[i:]
	return i
}
