// oa-fetch lists and downloads OpenAlex snapshot partitions, either
// per-kind from the public S3 bucket or as a full mirror via rclone.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/miku/oatables"
	"github.com/miku/oatables/config"
	"github.com/miku/oatables/schema"
	"github.com/miku/oatables/snapshot"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# oa-fetch - fetch OpenAlex snapshot data

Lists and downloads snapshot partitions from the public bucket. The bucket
allows anonymous access. A full mirror shells out to rclone, which needs an
"aws" remote of type s3 in rclone.conf, cf.
https://docs.openalex.org/download-all-data/download-to-your-machine

## examples

$ oa-fetch -k topics -l
$ oa-fetch -k topics -t 2024-05-01
$ oa-fetch -m
$ oa-fetch -sync

## flags

`, "\n")

var (
	dir         = flag.String("d", "", "local data directory (default: xdg data home)")
	kind        = flag.String("k", "", "record kind to list or fetch")
	listOnly    = flag.Bool("l", false, "list bucket partitions, do not download")
	manifest    = flag.Bool("m", false, "print manifest record counts per kind")
	sync        = flag.Bool("sync", false, "mirror the whole bucket with rclone")
	sinceStr    = flag.String("t", "", "only partitions updated on or after this date (YYYY-MM-DD)")
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
	ctx := context.Background()
	switch {
	case *sync:
		err := snapshot.Mirror(snapshot.MirrorOptions{
			Dir:       cfg.SnapshotDir(),
			Transfers: cfg.RcloneTransfers,
			Checkers:  cfg.RcloneCheckers,
		})
		if err != nil {
			log.Fatal(err)
		}
	case *manifest:
		kinds := schema.Kinds
		if *kind != "" {
			kinds = []string{*kind}
		}
		for _, k := range kinds {
			m, err := snapshot.FetchManifest(k)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s\t%d files\t%d records\n", k, len(m.Entries), m.Meta.RecordCount)
		}
	case *kind != "":
		client, err := snapshot.NewClient(ctx)
		if err != nil {
			log.Fatal(err)
		}
		parts, err := client.List(ctx, *kind)
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
		if *listOnly {
			for _, p := range parts {
				fmt.Println(p.Path)
			}
			return
		}
		for _, p := range parts {
			dst := path.Join(cfg.SnapshotDir(), p.Path)
			if _, err := os.Stat(dst); err == nil {
				continue // already fetched
			}
			log.WithFields(log.Fields{"key": p.Path, "dst": dst}).Info("downloading")
			if err := client.Download(ctx, p.Path, dst); err != nil {
				log.Fatal(err)
			}
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}
