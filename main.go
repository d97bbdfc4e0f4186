package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/protocol"
	"ebiten-caves/terminal"
	"ebiten-caves/ws"
)

var (
	configPath = flag.String("config", "cave.json", "JSON cave configuration overlaid on the defaults")
	seed       = flag.String("seed", "", "Fixed seed; overrides the configured seed")
	useTerm    = flag.Bool("terminal", false, "Preview caves in the terminal")
	serveAddr  = flag.String("serve", "", "Serve the cave stream on this address, e.g. localhost:8080")
	batch      = flag.Int("batch", 0, "Generate this many caves concurrently and print stats")
	export     = flag.Bool("export", false, "Write one cave snapshot as JSON to stdout")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *useTerm:
		err = runTerminal(cfg)
	case *serveAddr != "":
		err = runServer(cfg, *serveAddr)
	case *batch > 0:
		err = runBatch(cfg, *batch)
	case *export:
		err = runExport(cfg)
	default:
		err = runViewer(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers the defaults, the JSON file, .env files and the process
// environment, then the -seed flag
func loadConfig() (config.CaveConfig, error) {
	cfg := config.DefaultCaveConfig()
	if _, err := os.Stat(*configPath); err == nil {
		if err := config.LoadCaveConfigFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := config.LoadCaveConfigEnv(&cfg, ".env"); err != nil {
		return cfg, err
	}
	if *seed != "" {
		cfg.Seed = *seed
		cfg.UseRandomSeed = false
	}
	return cfg, cfg.Validate()
}

func runTerminal(cfg config.CaveConfig) error {
	// The terminal owns the screen; keep log output out of it
	log.SetOutput(io.Discard)

	gen, err := generation.NewCaveGenerator(cfg)
	if err != nil {
		return err
	}
	return terminal.RunTerminal(gen)
}

func runServer(cfg config.CaveConfig, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := ws.NewServer(cfg)
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, addr)
}

func runBatch(cfg config.CaveConfig, n int) error {
	base := cfg.Seed
	if cfg.UseRandomSeed || base == "" {
		base = time.Now().UTC().Format(time.RFC3339Nano)
	}
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("%s-%d", base, i)
	}

	// Per-cave logging would drown the summary
	log.SetOutput(io.Discard)
	start := time.Now()
	results, err := generation.RunBatch(context.Background(), cfg, seeds, runtime.NumCPU())
	log.SetOutput(os.Stderr)
	if err != nil {
		return err
	}

	var rooms, triangles, outlines, invalid int
	for _, r := range results {
		rooms += r.Rooms
		triangles += r.Triangles
		outlines += r.Outlines
		if r.Invalid != nil {
			invalid++
			fmt.Printf("%s: %v\n", r.Seed, r.Invalid)
		}
	}
	fmt.Printf("%d caves (%dx%d) in %v\n", n, cfg.Width, cfg.Height, time.Since(start).Round(time.Millisecond))
	fmt.Printf("avg rooms %.2f, avg triangles %.1f, avg outlines %.2f\n",
		float64(rooms)/float64(n), float64(triangles)/float64(n), float64(outlines)/float64(n))
	fmt.Printf("invalid outlines: %d\n", invalid)
	if invalid > 0 {
		return errors.Errorf("%d of %d caves had invalid outlines", invalid, n)
	}
	return nil
}

func runExport(cfg config.CaveConfig) error {
	gen, err := generation.NewCaveGenerator(cfg)
	if err != nil {
		return err
	}
	cave, err := gen.Generate()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(protocol.NewCaveSnapshot(cave)), "write snapshot")
}
