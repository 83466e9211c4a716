package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"shaban/pkg/plate"
)

// Parses plate text from the command line without touching an OCR engine.
// Usage: go run ./cmd/parsetext [-regions file] [-seps chars] "品川 500 あ 12-34"
func main() {
	regionsFile := flag.String("regions", "", "optional region catalog file (one name per line)")
	seps := flag.String("seps", "", "serial separator characters (default built-in set)")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: parsetext [-regions file] [-seps chars] <text>")
		os.Exit(2)
	}

	regions := plate.DefaultRegions
	if *regionsFile != "" {
		loaded, err := plate.LoadRegionsFile(*regionsFile)
		if err != nil {
			log.Fatalf("regions: %v", err)
		}
		regions = loaded
	}
	p := plate.NewParser(regions, *seps)
	rec := p.Parse(strings.Join(flag.Args(), " "))
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
