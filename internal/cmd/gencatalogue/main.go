// Command gencatalogue regenerates catalogue/tables.go from a seed file
// of meter definitions. It is the scansion engine's analogue of the
// teacher's internal/cmd/vocab.go: instead of fetching a BPE vocabulary
// over HTTP and emitting a Go map literal, it reads a local tab-separated
// seed of bahr name<TAB>pattern rows and emits the catalogue's static
// tables. Run with `go generate` from the catalogue package.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

type meterRow struct {
	name    string
	pattern string
}

func main() {
	seed := flag.String("seed", "meters.seed", "tab-separated seed file of name<TAB>pattern rows")
	out := flag.String("out", "tables.go", "output Go source file")
	flag.Parse()

	rows, err := readSeed(*seed)
	if err != nil {
		log.Fatalf("error reading seed: %v", err)
	}

	buf := new(bytes.Buffer)
	generatePreamble(buf, *seed)
	generateTables(buf, rows)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("error preparing source: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("error writing file: %v", err)
	}
}

func readSeed(path string) ([]meterRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []meterRow
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, pattern, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("invalid seed line: %q", line)
		}
		rows = append(rows, meterRow{name: name, pattern: pattern})
	}
	return rows, scanner.Err()
}

func generatePreamble(w *bytes.Buffer, seed string) {
	fmt.Fprintf(w, "// Code generated by internal/cmd/gencatalogue from %s. DO NOT EDIT.\n\n", seed)
	fmt.Fprintf(w, "package catalogue\n")
}

func generateTables(w *bytes.Buffer, rows []meterRow) {
	fmt.Fprintf(w, "var (\n")
	fmt.Fprintf(w, "meterNames = []string{\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%q,\n", r.name)
	}
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, "meterPatterns = []string{\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%q,\n", r.pattern)
	}
	fmt.Fprintf(w, "}\n")
	fmt.Fprintf(w, ")\n")
}
