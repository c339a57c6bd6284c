// oa-load walks a local snapshot mirror and loads records of one kind into
// Postgres, one transaction per record. Rejected records end up in a dead
// letter file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/miku/oatables"
	"github.com/miku/oatables/config"
	"github.com/miku/oatables/pgstore"
	"github.com/miku/oatables/snapshot"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# oa-load - load snapshot partitions into postgres

Walks data/<kind>/updated_date=*/*.gz under the local mirror and inserts all
records. Reloading a partition replaces the previous rows of each record.

## examples

$ oa-load -k topics -create
$ oa-load -k works -t 2024-05-01 -rejects rejected.ndjson

## flags

`, "\n")

var (
	dir         = flag.String("d", "", "local data directory (default: xdg data home)")
	kind        = flag.String("k", "works", "record kind to load")
	dsn         = flag.String("dsn", "", "postgres connection string (default: config)")
	createFirst = flag.Bool("create", false, "create tables before loading")
	dropFirst   = flag.Bool("drop", false, "drop tables first")
	sinceStr    = flag.String("t", "", "only partitions updated on or after this date (YYYY-MM-DD)")
	rejectFile  = flag.String("rejects", "", "write rejected records to this file")
	showVersion = flag.Bool("version", false, "show version")
)

func main() {
	flag.Usage = func() {
		io.WriteString(os.Stderr, docs)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(oatables.Version)
		os.Exit(0)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *dir != "" {
		cfg.DataDir = *dir
	}
	if *dsn == "" {
		*dsn = cfg.DatabaseURL
	}
	ctx := context.Background()
	store, err := pgstore.Open(ctx, *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	if *dropFirst {
		if err := store.Drop(ctx, *kind); err != nil {
			log.Fatal(err)
		}
	}
	if *createFirst || *dropFirst {
		if err := store.Create(ctx, *kind); err != nil {
			log.Fatal(err)
		}
	}
	parts, err := snapshot.LocalPartitions(cfg.SnapshotDir(), *kind)
	if err != nil {
		log.Fatal(err)
	}
	if *sinceStr != "" {
		since, err := time.Parse("2006-01-02", *sinceStr)
		if err != nil {
			log.Fatalf("invalid date: %v", err)
		}
		parts = snapshot.Since(parts, since)
	}
	if len(parts) == 0 {
		log.Fatalf("no partitions for %s under %s", *kind, cfg.SnapshotDir())
	}
	loader := pgstore.NewLoader(store, *kind)
	if *rejectFile != "" {
		f, err := os.Create(*rejectFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		loader.Rejects = f
	}
	log.WithFields(log.Fields{
		"load_id":    loader.LoadID,
		"kind":       *kind,
		"partitions": len(parts),
	}).Info("starting load")
	var total pgstore.LoadStats
	for _, p := range parts {
		rc, err := snapshot.Open(p.Path)
		if err != nil {
			log.Fatal(err)
		}
		stats, err := loader.Load(ctx, rc)
		rc.Close()
		if err != nil {
			log.Fatal(err)
		}
		total.Inserted += stats.Inserted
		total.Rejected += stats.Rejected
		log.WithFields(log.Fields{
			"partition": p.Path,
			"inserted":  stats.Inserted,
			"rejected":  stats.Rejected,
		}).Info("partition done")
	}
	log.WithFields(log.Fields{
		"load_id":  loader.LoadID,
		"inserted": total.Inserted,
		"rejected": total.Rejected,
	}).Info("load done")
}
