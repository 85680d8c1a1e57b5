// Command transitway builds a transit snapshot from a JSON base
// request document (make_base) and answers stat_requests queries
// against a previously built snapshot (process_requests).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lvl-transit/transitway/reqdoc"
	"github.com/lvl-transit/transitway/snapshot"
	"github.com/lvl-transit/transitway/transit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	if len(args) != 1 {
		printUsage()
		return 1
	}

	var doc reqdoc.Document
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		slog.Error("reading request document", "err", err)
		return 1
	}

	var err error
	switch args[0] {
	case "make_base":
		err = makeBase(doc)
	case "process_requests":
		err = processRequests(doc, out)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode: %s\n\n", args[0])
		printUsage()
		return 1
	}

	if err != nil {
		slog.Error("transitway", "err", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: transitway [make_base|process_requests]")
	fmt.Fprintln(os.Stderr, "Reads a JSON request document on stdin.")
}

// makeBase seeds a catalogue and router from base_requests, then
// writes the resulting snapshot to the configured file.
func makeBase(doc reqdoc.Document) error {
	cat, err := reqdoc.SeedCatalogue(doc.BaseRequests)
	if err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}

	router := transit.New(cat)
	routingSettings := doc.RoutingSettings.ToTransitSettings()
	if err := router.Init(routingSettings); err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	state, err := router.Export()
	if err != nil {
		return fmt.Errorf("export router state: %w", err)
	}

	f, err := os.Create(doc.SerializationSettings.File)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	snap := snapshot.Snapshot{
		Catalogue:       cat,
		RoutingSettings: routingSettings,
		RenderSettings:  doc.RenderSettings.ToMapviewSettings(),
		Router:          state,
	}
	if err := snapshot.Encode(f, snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	slog.Info("wrote snapshot", "file", doc.SerializationSettings.File, "stops", cat.StopCount(), "buses", cat.BusCount())
	return nil
}

// processRequests loads a previously built snapshot and answers
// stat_requests against it, writing the answer array to out.
func processRequests(doc reqdoc.Document, out io.Writer) error {
	f, err := os.Open(doc.SerializationSettings.File)
	if err != nil {
		return fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	snap, err := snapshot.Decode(f)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	router := transit.New(snap.Catalogue)
	if err := router.LoadFromSnapshot(snap.Router); err != nil {
		return fmt.Errorf("load router: %w", err)
	}

	handler := &reqdoc.Handler{
		Catalogue:      snap.Catalogue,
		Router:         router,
		RenderSettings: snap.RenderSettings,
	}
	answers := handler.HandleAll(doc.StatRequests)

	return json.NewEncoder(out).Encode(answers)
}
