// Package telemetry provides the analytics SDK adapters hits are delivered to.
package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultSizeLimit is the default buffer size (4KB) if not specified.
	DefaultSizeLimit = 4096
	// DefaultTimeLimit is the default flush interval if not specified.
	DefaultTimeLimit = time.Second
)

// ErrBatcherClosed is returned by Write after Close.
var ErrBatcherClosed = zerr.New("batch processor is closed")

// BatchProcessor buffers writes until a size limit or time limit is reached.
// It is thread-safe. The first error returned by the flush callback is kept
// and reported by Flush and Close.
type BatchProcessor struct {
	sizeLimit int
	timeLimit time.Duration
	onFlush   func([]byte) error

	mu       sync.Mutex
	buffer   *bytes.Buffer
	ticker   *time.Ticker
	stopCh   chan struct{}
	closed   bool
	flushErr error
}

// NewBatchProcessor returns a new BatchProcessor.
// Non-positive limits select the defaults. Call Close to stop the background ticker.
func NewBatchProcessor(sizeLimit int, timeLimit time.Duration, onFlush func([]byte) error) *BatchProcessor {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	bp := &BatchProcessor{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		onFlush:   onFlush,
		buffer:    new(bytes.Buffer),
		stopCh:    make(chan struct{}),
	}

	bp.ticker = time.NewTicker(timeLimit)
	go bp.run()

	return bp
}

// Write appends p to the buffer and flushes once the size limit is reached.
func (bp *BatchProcessor) Write(p []byte) (n int, err error) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return 0, ErrBatcherClosed
	}

	n, err = bp.buffer.Write(p)
	if err != nil {
		return n, err
	}

	if bp.buffer.Len() >= bp.sizeLimit {
		bp.flushLocked()
		bp.ticker.Reset(bp.timeLimit)
	}

	return n, nil
}

// Flush hands buffered data to the callback and returns the first flush error seen so far.
func (bp *BatchProcessor) Flush() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if !bp.closed {
		bp.flushLocked()
	}
	return bp.flushErr
}

// Close stops the background flusher and performs a final flush.
func (bp *BatchProcessor) Close() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.closed {
		return bp.flushErr
	}

	bp.closed = true
	close(bp.stopCh)
	bp.flushLocked()
	return bp.flushErr
}

func (bp *BatchProcessor) run() {
	for {
		select {
		case <-bp.ticker.C:
			_ = bp.Flush()
		case <-bp.stopCh:
			bp.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held.
func (bp *BatchProcessor) flushLocked() {
	if bp.buffer.Len() == 0 {
		return
	}

	data := make([]byte, bp.buffer.Len())
	copy(data, bp.buffer.Bytes())
	bp.buffer.Reset()

	if bp.onFlush == nil {
		return
	}
	if err := bp.onFlush(data); err != nil && bp.flushErr == nil {
		bp.flushErr = zerr.Wrap(err, domain.ErrHitSendFailed.Error())
	}
}
