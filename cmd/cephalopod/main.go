package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"svw.info/cephalopod/internal/config"
	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/engine"
	"svw.info/cephalopod/internal/logging"
	"svw.info/cephalopod/internal/usecase"
	"svw.info/cephalopod/internal/validator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run reads one problem from stdin and writes its aggregate as a single line
// to stdout. Diagnostics go to stderr only. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cephalopod", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "optional YAML settings file")
	engineKind := fs.String("engine", "", "engine to use: memo|parallel|nocache (overrides config)")
	workers := fs.Int("workers", -1, "parallel engine workers, 0 = NumCPU (overrides config)")
	levelStr := fs.String("log-level", "", "debug|info|warn|error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	settings, err := config.LoadSettings(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *engineKind != "" {
		settings.Engine = domain.EngineKind(*engineKind)
	}
	if *workers >= 0 {
		settings.Workers = *workers
	}
	if *levelStr != "" {
		settings.LogLevel = *levelStr
	}
	logger := logging.New(stderr, settings.LogLevel)

	e, err := engine.New(settings.Engine, settings.Workers)
	if err != nil {
		logger.Error("engine", "err", err)
		return 2
	}

	p, err := config.ReadProblem(stdin)
	if err != nil {
		logger.Error("read input", "err", err)
		return 1
	}

	uc := usecase.NewService(e, nil, validator.New(), nil, nil)
	result, st, err := uc.Compute(context.Background(), p)
	if err != nil {
		logger.Error("compute", "err", err)
		return 1
	}
	logger.Debug("search done",
		"engine", settings.Engine,
		"depth", p.Depth,
		"nodes", st.Nodes,
		"cacheHits", st.CacheHits,
		"cacheSize", st.CacheSize,
		"dur", st.Duration,
	)
	fmt.Fprintln(stdout, result)
	return 0
}
