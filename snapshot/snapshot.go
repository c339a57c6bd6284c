// Package snapshot accesses OpenAlex snapshot data: partition discovery in a
// local mirror, gzip ndjson readers, listing and fetching from the public S3
// bucket, and a full bucket mirror via rclone. A snapshot is laid out as
// data/<kind>/updated_date=YYYY-MM-DD/part_NNN.gz, one JSON record per line.
package snapshot

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	gzip "github.com/klauspost/pgzip"
)

// DefaultBucket is the public, requester-anonymous OpenAlex bucket.
const DefaultBucket = "openalex"

var partitionPattern = regexp.MustCompile(`data/([a-z_]+)/updated_date=(\d{4}-\d{2}-\d{2})/([^/]+\.gz)$`)

// Partition is one snapshot file of a kind, for one update date.
type Partition struct {
	Kind string
	Date string // YYYY-MM-DD
	Path string // local path or bucket key
}

// Time returns the update date at the beginning of its day.
func (p Partition) Time() (time.Time, error) {
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}, err
	}
	return now.With(t).BeginningOfDay(), nil
}

// ParsePath extracts kind, date and filename from a snapshot path or bucket
// key. Fails on anything outside the snapshot layout, e.g. manifest files.
func ParsePath(p string) (Partition, error) {
	m := partitionPattern.FindStringSubmatch(filepath.ToSlash(p))
	if m == nil {
		return Partition{}, fmt.Errorf("not a snapshot partition: %s", p)
	}
	return Partition{Kind: m[1], Date: m[2], Path: p}, nil
}

// LocalPartitions walks a local snapshot mirror and returns all partitions of
// one kind, sorted by date, then filename.
func LocalPartitions(root, kind string) ([]Partition, error) {
	dir := path.Join(root, "data", kind)
	var parts []Partition
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".gz") {
			return nil
		}
		part, err := ParsePath(p)
		if err != nil {
			return nil // stray file, skip
		}
		parts = append(parts, part)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].Date != parts[j].Date {
			return parts[i].Date < parts[j].Date
		}
		return parts[i].Path < parts[j].Path
	})
	return parts, nil
}

// Since keeps partitions updated on or after the day of t.
func Since(parts []Partition, t time.Time) []Partition {
	cutoff := now.With(t).BeginningOfDay()
	var out []Partition
	for _, p := range parts {
		pt, err := p.Time()
		if err != nil {
			continue
		}
		if !pt.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// Open returns a reader over the decompressed lines of a local partition
// file. Closing it closes the underlying file as well.
func Open(p string) (io.ReadCloser, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &partReader{zr: zr, f: f}, nil
}

type partReader struct {
	zr *gzip.Reader
	f  *os.File
}

func (r *partReader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *partReader) Close() error {
	zerr := r.zr.Close()
	ferr := r.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
