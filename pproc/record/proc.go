// Package record runs a per-record transformation over a newline delimited
// stream with a pool of workers. Output order is not guaranteed. Records that
// fail with a recoverable error can be routed to a reject writer instead of
// aborting the whole stream, which is how conversion keeps going when a
// single snapshot line violates the schema.
package record

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxBufferSize = 1 << 24 // 16MB, soft limit
	defaultMaxTokenSize  = 1 << 26 // 64MB, hard limit, must exceed the buffer size
)

// ProcessFunc transforms one input record into output bytes. A nil result
// with a nil error drops the record silently.
type ProcessFunc func([]byte) ([]byte, error)

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.numWorkers = n
		}
	}
}

// WithMaxTokenSize sets the maximum record size.
func WithMaxTokenSize(size int) ProcessorOption {
	return func(p *Processor) {
		if size > 0 {
			p.maxTokenSize = size
		}
	}
}

// WithMaxBufferSize sets the initial scanner buffer size.
func WithMaxBufferSize(size int) ProcessorOption {
	return func(p *Processor) {
		if size > 0 {
			p.maxBufferSize = size
		}
	}
}

// WithRejects routes input records whose processing fails with an error
// matched by keep to w, one original record per line, instead of failing the
// stream.
func WithRejects(w io.Writer, keep func(error) bool) ProcessorOption {
	return func(p *Processor) {
		p.rejectWriter = w
		p.rejectable = keep
	}
}

// Processor handles parallel processing of newline delimited records.
type Processor struct {
	processFunc   ProcessFunc
	numWorkers    int
	maxBufferSize int
	maxTokenSize  int
	rejectWriter  io.Writer
	rejectable    func(error) bool
}

// NewProcessor creates a new Processor over lines.
func NewProcessor(processFunc ProcessFunc, opts ...ProcessorOption) *Processor {
	p := &Processor{
		processFunc:   processFunc,
		numWorkers:    runtime.NumCPU(),
		maxBufferSize: defaultMaxBufferSize,
		maxTokenSize:  defaultMaxTokenSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process reads records from r, processes them in parallel and writes
// results to w. Writes are serialized, a single record's output is never
// interleaved.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	scanner := bufio.NewScanner(bufio.NewReader(r))
	scanner.Buffer(make([]byte, 0, p.maxBufferSize), p.maxTokenSize)
	workChan := make(chan []byte, p.numWorkers*2)
	var (
		writeMu  sync.Mutex
		rejectMu sync.Mutex
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(workChan)
		for scanner.Scan() {
			token := scanner.Bytes()
			data := make([]byte, len(token))
			copy(data, token)
			select {
			case workChan <- data:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})
	for i := 0; i < p.numWorkers; i++ {
		g.Go(func() error {
			for data := range workChan {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				result, err := p.processFunc(data)
				if err != nil {
					if p.rejectWriter != nil && p.rejectable != nil && p.rejectable(err) {
						rejectMu.Lock()
						_, werr := p.rejectWriter.Write(append(data, '\n'))
						rejectMu.Unlock()
						if werr != nil {
							return werr
						}
						continue
					}
					return err
				}
				if result != nil {
					writeMu.Lock()
					_, err := bw.Write(result)
					writeMu.Unlock()
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	return g.Wait()
}
