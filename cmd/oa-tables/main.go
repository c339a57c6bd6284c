// oa-tables prints the CREATE or DROP DDL for the relational layout of one
// or all kinds.
//
// $ oa-tables -k works | psql $OATABLES_DATABASE_URL
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/miku/oatables"
	"github.com/miku/oatables/pgstore"
	"github.com/miku/oatables/schema"
)

var (
	kind        = flag.String("k", "", "record kind, all kinds when empty")
	dropDDL     = flag.Bool("drop", false, "emit DROP statements instead")
	showVersion = flag.Bool("version", false, "show version")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(oatables.Version)
		os.Exit(0)
	}
	kinds := schema.Kinds
	if *kind != "" {
		kinds = []string{*kind}
	}
	if !*dropDDL {
		fmt.Printf("CREATE SCHEMA IF NOT EXISTS %s;\n\n", schema.Namespace)
	}
	for _, name := range kinds {
		k, ok := schema.Lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown kind: %s\n", name)
			os.Exit(1)
		}
		stmts := pgstore.CreateDDL(k)
		if *dropDDL {
			stmts = pgstore.DropDDL(k)
		}
		for _, stmt := range stmts {
			fmt.Printf("%s;\n\n", stmt)
		}
	}
}
