// Package main is the entry point for the succinct script runner.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/succinct/internal/bitvec"
	"github.com/dshills/succinct/internal/config"
	"github.com/dshills/succinct/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	in, err := os.Open(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer out.Close()

	opts := []bitvec.Option{bitvec.WithCapacity(cfg.BlockCapacity)}

	var rep script.Report
	switch cfg.Algo {
	case "bv":
		rep, err = script.RunBV(in, out, opts...)
	case "bp":
		rep, err = script.RunBP(in, out, opts...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: run %s: %v\n", rep.RunID, err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("RESULT algo=%s name=%s time=%d space=%d\n",
		rep.Algo, cfg.Name, rep.Elapsed.Milliseconds(), rep.SpaceBits)
	return 0
}

func parseFlags() (config.Config, error) {
	cfg := config.Default()
	var configPath string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&cfg.BlockCapacity, "cap", cfg.BlockCapacity, "Block capacity in bits (multiple of 64)")
	flag.StringVar(&cfg.Name, "name", cfg.Name, "Run name reported on the RESULT line")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Succinct - dynamic bit vector and BP tree script runner\n\n")
		fmt.Fprintf(os.Stderr, "Usage: succinct [options] <bv|bp> <input_file> <output_file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  succinct bv ops.txt results.txt         Run a bit-vector script\n")
		fmt.Fprintf(os.Stderr, "  succinct -cap 1024 bp ops.txt out.txt   Run a tree script with 1024-bit blocks\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Succinct %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if configPath != "" {
		if err := cfg.ApplyFile(configPath); err != nil {
			return cfg, err
		}
		// Re-apply flags so the command line wins over the file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "cap":
				fmt.Sscanf(f.Value.String(), "%d", &cfg.BlockCapacity)
			case "name":
				cfg.Name = f.Value.String()
			}
		})
	}

	// Positional arguments override the config file.
	args := flag.Args()
	switch len(args) {
	case 0:
		// Everything must come from the config file.
	case 3:
		cfg.Algo = args[0]
		cfg.InputPath = args[1]
		cfg.OutputPath = args[2]
	default:
		flag.Usage()
		return cfg, fmt.Errorf("expected <bv|bp> <input_file> <output_file>, got %d arguments", len(args))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
