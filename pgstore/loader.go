package pgstore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/miku/oatables/normalize"
	"github.com/miku/oatables/project"
	"github.com/miku/oatables/schema"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
)

const (
	loaderBufferSize   = 1 << 24 // 16MB
	loaderMaxTokenSize = 1 << 26 // 64MB, works records can be large
)

// Loader streams ndjson records of one kind into the store. Records that
// violate the schema go to the Rejects sink, one original line each, and
// never abort the load. Each load run gets its own id for bookkeeping.
type Loader struct {
	Store    *Store
	Kind     string
	LoadID   uuid.UUID
	Rejects  io.Writer // optional dead letter sink
	LogEvery int64
}

// NewLoader returns a loader with a fresh load id.
func NewLoader(store *Store, kind string) *Loader {
	return &Loader{
		Store:    store,
		Kind:     kind,
		LoadID:   uuid.New(),
		LogEvery: 100000,
	}
}

// LoadStats summarize one load run.
type LoadStats struct {
	Inserted int64
	Rejected int64
}

// Load reads records line by line, normalizes, projects and inserts them.
// The run is recorded in the bookkeeping table on completion.
func (l *Loader) Load(ctx context.Context, r io.Reader) (LoadStats, error) {
	var stats LoadStats
	started := time.Now()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, loaderBufferSize), loaderMaxTokenSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			if rerr := l.reject(line); rerr != nil {
				return stats, rerr
			}
			stats.Rejected++
			continue
		}
		c, err := normalize.Normalize(l.Kind, raw)
		if err != nil {
			var sv *normalize.SchemaViolation
			if errors.As(err, &sv) {
				if rerr := l.reject(line); rerr != nil {
					return stats, rerr
				}
				stats.Rejected++
				continue
			}
			return stats, err
		}
		rows, err := project.Project(c)
		if err != nil {
			return stats, err
		}
		if err := l.Store.InsertRecord(ctx, rows); err != nil {
			return stats, err
		}
		stats.Inserted++
		if l.LogEvery > 0 && stats.Inserted%l.LogEvery == 0 {
			log.WithFields(log.Fields{
				"load_id":  l.LoadID,
				"kind":     l.Kind,
				"inserted": stats.Inserted,
				"rejected": stats.Rejected,
			}).Info("load progress")
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}
	if err := l.record(ctx, started, stats); err != nil {
		return stats, err
	}
	return stats, nil
}

func (l *Loader) reject(line []byte) error {
	if l.Rejects == nil {
		return nil
	}
	_, err := l.Rejects.Write(append(append([]byte{}, line...), '\n'))
	return err
}

// record writes one row into the loads bookkeeping table.
func (l *Loader) record(ctx context.Context, started time.Time, stats LoadStats) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.loads (
    load_id TEXT,
    kind TEXT,
    started TIMESTAMPTZ,
    finished TIMESTAMPTZ,
    inserted BIGINT,
    rejected BIGINT
)`, schema.Namespace)
	if _, err := l.Store.Pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+schema.Namespace); err != nil {
		return err
	}
	if _, err := l.Store.Pool.Exec(ctx, ddl); err != nil {
		return err
	}
	_, err := l.Store.Pool.Exec(ctx,
		fmt.Sprintf("INSERT INTO %s.loads (load_id, kind, started, finished, inserted, rejected) VALUES ($1, $2, $3, $4, $5, $6)", schema.Namespace),
		l.LoadID.String(), l.Kind, started, time.Now(), stats.Inserted, stats.Rejected)
	return err
}
