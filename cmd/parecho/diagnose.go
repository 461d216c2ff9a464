// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jllopis/parecho/pkg/errors"
	"github.com/jllopis/parecho/pkg/report"
)

func runDiagnose(args []string) error {
	fs := flag.NewFlagSet("diagnose", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")
	asYAML := fs.Bool("yaml", false, "render the report as YAML")
	store := fs.Bool("store", false, "persist the report to the configured store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, shutdown, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer shutdownQuietly(shutdown)

	pipelineErr := runSamplePipeline()
	r := report.Build(pipelineErr)

	if err := writeReport(os.Stdout, r, *asYAML); err != nil {
		return err
	}

	if *store {
		st, err := report.OpenSQLiteStore(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Save(context.Background(), r); err != nil {
			return fmt.Errorf("store report: %w", err)
		}
		slog.Info("report stored", "id", r.ID, "path", cfg.Store.Path)
	}
	return nil
}

func runReports(args []string) error {
	fs := flag.NewFlagSet("reports", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")
	code := fs.String("code", "", "filter by error code")
	limit := fs.Int("limit", 20, "maximum reports to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, shutdown, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer shutdownQuietly(shutdown)

	st, err := report.OpenSQLiteStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	reports, err := st.List(context.Background(), *code, *limit)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Printf("%s  %-16s %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Code, r.Summary)
	}
	return nil
}

func writeReport(w io.Writer, r *report.Report, asYAML bool) error {
	if asYAML {
		raw, err := r.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(raw)
		return err
	}
	return r.WriteText(w)
}

// planSize is the sample pipeline's typed detail payload.
type planSize int

// runSamplePipeline fails on purpose, decorating the error with the typed
// context the diagnose command then extracts.
func runSamplePipeline() error {
	inner := errors.New(errors.CodeUnavailable, "step store unreachable", nil).
		WithAttribute("endpoint", "localhost:6334")
	outer := errors.New(errors.CodeInternal, "plan execution failed", inner).
		WithSuggestion("retry once the step store is back up")
	return errors.Detail(outer, planSize(7))
}

// planSizeOf goes through the public facade exactly the way external
// callers would.
func planSizeOf(err error) (planSize, bool) {
	return errors.ValueFrom[planSize](err)
}
