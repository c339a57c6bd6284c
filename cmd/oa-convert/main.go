// oa-convert turns OpenAlex ndjson for one kind into SQL INSERT statements.
//
// $ zcat part_000.gz | oa-convert -k works > works.sql
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/miku/oatables"
	"github.com/miku/oatables/normalize"
	"github.com/miku/oatables/pproc/record"
	"github.com/miku/oatables/project"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
)

var docs = strings.TrimLeft(`
# oa-convert - flatten OpenAlex records to SQL

Reads newline delimited JSON records of a single kind from stdin and writes
INSERT statements for the relational layout to stdout. Records that violate
the schema can be collected in a reject file instead of stopping the stream.

## examples

$ zcat data/works/updated_date=2024-05-30/part_000.gz | oa-convert -k works
$ cat authors.ndjson | oa-convert -k authors -f tsv -rejects bad.ndjson

## flags

`, "\n")

var (
	kind        = flag.String("k", "works", "record kind (works, authors, sources, ...)")
	format      = flag.String("f", "sql", "output format: sql or tsv")
	numWorkers  = flag.Int("w", runtime.NumCPU(), "number of workers")
	rejectFile  = flag.String("rejects", "", "write rejected input lines to this file")
	zstdOut     = flag.Bool("z", false, "zstd compress output")
	cpuprofile  = flag.String("cpuprofile", "", "file to write cpu pprof to")
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
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	var w io.Writer = os.Stdout
	if *zstdOut {
		enc, err := zstd.NewWriter(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		defer enc.Close()
		w = enc
	}
	var opts []record.ProcessorOption
	opts = append(opts, record.WithWorkers(*numWorkers))
	if *rejectFile != "" {
		f, err := os.Create(*rejectFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		opts = append(opts, record.WithRejects(f, func(err error) bool {
			var sv *normalize.SchemaViolation
			return errors.As(err, &sv)
		}))
	}
	proc := record.NewProcessor(convertFunc(*kind, *format), opts...)
	if err := proc.Process(context.Background(), os.Stdin, w); err != nil {
		log.Fatal(err)
	}
}

func convertFunc(kind, format string) record.ProcessFunc {
	return func(p []byte) ([]byte, error) {
		var raw map[string]any
		if err := json.Unmarshal(p, &raw); err != nil {
			return nil, &normalize.SchemaViolation{Kind: kind, Rule: "json", Msg: err.Error()}
		}
		c, err := normalize.Normalize(kind, raw)
		if err != nil {
			return nil, err
		}
		rows, err := project.Project(c)
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		switch format {
		case "tsv":
			writeTSV(&sb, rows)
		default:
			for _, stmt := range project.Statements(rows) {
				sb.WriteString(stmt)
				sb.WriteString("\n")
			}
		}
		return []byte(sb.String()), nil
	}
}

// writeTSV emits one line per row: table name followed by the SQL literal of
// each value.
func writeTSV(sb *strings.Builder, rows *project.Rows) {
	emit := func(name string, rs []project.Row) {
		for _, row := range rs {
			sb.WriteString(name)
			for _, v := range row {
				sb.WriteString("\t")
				sb.WriteString(project.Literal(v))
			}
			sb.WriteString("\n")
		}
	}
	emit(rows.Kind.Root.Name, rows.Tables[rows.Kind.Root.Name])
	for _, sub := range rows.Kind.Subs {
		emit(sub.Table.Name, rows.Tables[sub.Table.Name])
	}
}
