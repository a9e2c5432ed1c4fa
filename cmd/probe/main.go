// Command probe calls a fault-boundary server and prints what came back.
//
//	probe -url http://localhost:8080 -path /api/home
//	probe -url localhost:8080 -faults 10
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-fault-boundary/internal/adapter"
	"github.com/MKhiriev/go-fault-boundary/internal/logger"
	"github.com/MKhiriev/go-fault-boundary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "fault-boundary server base url")
	path := flag.String("path", "/api/home", "request path to probe")
	faults := flag.Int("faults", 0, "print the N most recent journal records instead of probing")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	showBuild := flag.Bool("build-info", false, "print build information and exit")
	flag.Parse()

	if *showBuild {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewLogger("fault-boundary-probe")
	serverAdapter, err := adapter.NewHTTPServerAdapter(*serverURL, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	if *faults > 0 {
		records, err := serverAdapter.RecentFaults(ctx, *faults)
		if err != nil {
			log.Fatal().Err(err).Msg("list faults")
		}
		printJSON(records)
		return
	}

	result, err := serverAdapter.Probe(ctx, *path)
	if err != nil {
		log.Fatal().Err(err).Msg("probe")
	}

	fmt.Printf("status: %d\ncontent-type: %s\ntrace-id: %s\n", result.StatusCode, result.ContentType, result.TraceID)
	if result.Fault != nil {
		printJSON(result.Fault)
		return
	}
	fmt.Println(result.Body)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
