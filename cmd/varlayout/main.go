package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/tuannm99/varlayout"
	"github.com/tuannm99/varlayout/schemafile"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to a YAML schema declaration")
	lengthsArg := flag.String("lengths", "", "Comma-separated lengths for array fields, in declaration order")
	flag.Parse()

	if *schemaPath == "" {
		log.Fatal("missing -schema")
	}

	def, err := schemafile.Load(*schemaPath)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	schema, err := def.Build()
	if err != nil {
		log.Fatalf("Failed to build schema: %v", err)
	}

	lengths, err := parseLengths(*lengthsArg)
	if err != nil {
		log.Fatalf("Failed to parse -lengths: %v", err)
	}
	if len(lengths) != schema.NumArrays() {
		log.Fatalf("Schema %q has %d array fields, got %d lengths",
			def.Record, schema.NumArrays(), len(lengths))
	}

	layout := varlayout.Resolve(schema, lengths)

	fmt.Printf("record %s: %d fields, %d bytes\n",
		def.Record, layout.NumFields(), layout.TotalSize())
	for _, f := range schema.Fields() {
		fmt.Printf("  %-20s %-6s offset=%-6d extent=%d\n",
			f.Name, f.Kind, layout.Offset(f.Name), layout.Extent(f.Name))
	}
}

func parseLengths(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative length %d", n)
		}
		out = append(out, n)
	}
	return out, nil
}
