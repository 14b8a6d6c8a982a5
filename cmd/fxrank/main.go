// Command fxrank ranks a directed graph described by a YAML file and
// prints the resulting table.
//
// Usage:
//
//	fxrank -config graph.yaml [-v]
//
// The -v flag streams per-iteration engine diagnostics to stderr.
// A run that exhausts its iteration budget exits non-zero.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avernet/fxrank/pagerank"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run description")
	verbose := flag.Bool("v", false, "stream iteration diagnostics to stderr")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("fxrank: ")

	if *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	g, err := cfg.Graph()
	if err != nil {
		log.Fatalf("assemble graph: %v", err)
	}

	sg, err := pagerank.NewStochasticGraph(g)
	if err != nil {
		log.Fatalf("snapshot graph: %v", err)
	}
	if dangling := sg.Dangling(); len(dangling) > 0 {
		log.Printf("warning: %d dangling node(s): %v", len(dangling), dangling)
	}

	opts := cfg.EngineOptions()
	if *verbose {
		opts = append(opts, pagerank.WithTrace(log.Printf))
	}

	table, err := pagerank.Rank(sg, opts...)
	if err != nil {
		log.Fatalf("rank: %v", err)
	}

	fmt.Print(table.String())
}
