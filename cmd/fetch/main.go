// Package main fetches and merges one driver's race telemetry and prints
// the compacted JSON document. Useful for debugging the merge offline.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"openf1-service/internal/openf1"
	"openf1-service/internal/prune"
	"openf1-service/internal/telemetry"
)

func main() {
	// Parse flags
	sessionKey := flag.Int("session-key", 0, "OpenF1 session key (required)")
	driverNumber := flag.Int("driver-number", 0, "Driver number (required)")
	baseURL := flag.String("openf1-url", openf1.DefaultBaseURL, "OpenF1 API base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall fetch deadline")
	flag.Parse()

	if *sessionKey == 0 || *driverNumber == 0 {
		fmt.Fprintln(os.Stderr, "Error: --session-key and --driver-number are required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := openf1.NewClient(openf1.WithBaseURL(*baseURL))
	merger := telemetry.NewMerger(client)

	merged, err := merger.Run(ctx, *sessionKey, *driverNumber)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error merging telemetry: %v\n", err)
		os.Exit(1)
	}

	document, err := prune.Document(merged)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compacting telemetry: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
