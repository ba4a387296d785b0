// Command schema regenerates schema.json, the JSON schema for the feedscout
// YAML configuration. pkg/config embeds the file and verifies loaded configs
// against it; the go:generate directive in pkg/config/config.go runs this
// command so the output lands next to config.go.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/feedscout/pkg/config"
)

func main() {
	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	// default matches the embed path in pkg/config
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("feedscout config schema written to %s\n", outputPath)
}
