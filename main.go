package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ksev/txtdist/internal/config"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

var version = "dev"

func main() {
	var (
		configPath = flag.String("config", "", "load settings from this YAML file")
		addr       = flag.String("addr", ":8080", "bind to this address")
		debug      = flag.Bool("debug", false, "debugging mode")
		metric     = flag.String("metric", "levenshtein",
			"edit distance metric to use: levenshtein or damerau_levenshtein")
		normalFlag = flag.String("normalize", "",
			"Unicode normalization: NFC, NFD, NFKC, NFKD or empty for none")
		timeout = flag.Int("timeout", 60, "request timeout in seconds")
	)

	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		log.Fatal("unexpected arguments")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "debug":
			cfg.Debug = *debug
		case "metric":
			cfg.Metric = *metric
		case "normalize":
			cfg.Normalize = *normalFlag
		case "timeout":
			cfg.TimeoutSeconds = *timeout
		}
	})

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	normalize, err := normalForm(cfg.Normalize)
	if err != nil {
		logger.Fatal("bad configuration", zap.Error(err))
	}

	srv := distServer{
		logger:     logger,
		metricName: cfg.Metric,
		normName:   strings.ToLower(cfg.Normalize),
		normalize:  normalize,
	}
	h, err := srv.init()
	if err != nil {
		logger.Fatal("bad configuration", zap.Error(err))
	}

	t := time.Duration(cfg.TimeoutSeconds) * time.Second
	httpSrv := http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  t,
		WriteTimeout: t,
	}

	logger.Info("starting server",
		zap.String("addr", cfg.Addr),
		zap.String("metric", cfg.Metric),
		zap.String("normalize", srv.normName),
		zap.String("version", version))
	logger.Fatal("server stopped", zap.Error(httpSrv.ListenAndServe()))
}

// newLogger returns a zap logger. When debug is true, uses development
// config (human-readable, debug level); otherwise uses production config
// (JSON, info level).
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// normalForm returns a Unicode normalization function.
func normalForm(name string) (nf func(string) string, err error) {
	switch strings.ToLower(name) {
	case "":
	case "nfc":
		nf = norm.NFC.String
	case "nfd":
		nf = norm.NFD.String
	case "nfkc":
		nf = norm.NFKC.String
	case "nfkd":
		nf = norm.NFKD.String
	default:
		err = fmt.Errorf("unknown string normalization %q", name)
	}
	return
}
