// SPDX-License-Identifier: Apache-2.0

// Command parecho demonstrates the provide protocol end to end: it runs a
// sample failing pipeline, pulls typed diagnostic context out of the error
// chain, and renders or stores the resulting report.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jllopis/parecho/pkg/config"
	"github.com/jllopis/parecho/pkg/telemetry"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "parecho: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Println(version)
		return nil
	case "diagnose":
		return runDiagnose(args[1:])
	case "reports":
		return runReports(args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println(`Usage: parecho <command> [flags]

Commands:
  diagnose   run the sample pipeline and report its failure
  reports    list stored diagnostic reports
  version    print the version`)
}

func setup(configPath string) (*config.Config, telemetry.ShutdownFunc, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	telemetry.ConfigureSlog(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	shutdown, err := telemetry.InitWithConfig("parecho", version, telemetry.Config{
		Exporter:     cfg.Telemetry.Exporter,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure: cfg.Telemetry.OTLPInsecure,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init telemetry: %w", err)
	}
	return cfg, shutdown, nil
}

func shutdownQuietly(shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
