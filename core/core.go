// Package core has core logic for building, filtering and acting on experiment comparison tables.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/internal/outwriter"
	"github.com/huangsam/scorecard/schema"
	"golang.org/x/sync/errgroup"
)

// ExecutorFunc defines the function signature for executing table-based commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.ExperimentSource) error

// DeletePrompt is shown before each experiment is trashed.
const DeletePrompt = "Trash this experiment?"

// Confirmer asks the user to approve an action. It returns false to skip it.
type Confirmer func(prompt string) (bool, error)

// ErrNoExperiments is returned by delete when no ids are given.
var ErrNoExperiments = errors.New("no experiment ids given")

// CompareTable fetches experiments and returns the filtered, limited comparison table.
func CompareTable(ctx context.Context, cfg *contract.Config, src contract.ExperimentSource) (schema.Table, error) {
	exps, err := src.Fetch(ctx)
	if err != nil {
		return schema.Table{}, fmt.Errorf("failed to fetch experiments: %w", err)
	}
	table := BuildTable(exps, OptionsFromConfig(cfg))
	table = FilterRows(table, cfg.Filter, cfg.Precision)
	table = LimitRows(table, cfg.ResultLimit)
	contract.Logger().Debugw("built comparison table",
		"experiments", len(exps), "rows", len(table.Rows), "columns", len(table.Columns))
	return table, nil
}

// ExecuteCompare fetches experiments and writes the comparison table.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, src contract.ExperimentSource) error {
	start := time.Now()
	table, err := CompareTable(ctx, cfg, src)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteTable(table, cfg, duration)
}

// ExecuteDelete trashes the given experiments, asking confirm first for
// each one unless cfg.AssumeYes is set. Approved deletes run concurrently,
// at most cfg.Workers at a time; the first failure cancels the rest.
func ExecuteDelete(ctx context.Context, cfg *contract.Config, src contract.ExperimentSource, ids []string, confirm Confirmer, out io.Writer) error {
	if len(ids) == 0 {
		return ErrNoExperiments
	}

	approved := make([]string, 0, len(ids))
	for _, id := range ids {
		if cfg.AssumeYes || confirm == nil {
			approved = append(approved, id)
			continue
		}
		ok, err := confirm(fmt.Sprintf("%s [%s]", DeletePrompt, id))
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if ok {
			approved = append(approved, id)
		} else {
			contract.Logger().Infow("skipped delete", "id", id)
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for _, id := range approved {
		g.Go(func() error {
			if err := src.Delete(gctx, id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", id, err)
			}
			mu.Lock()
			defer mu.Unlock()
			_, err := fmt.Fprintf(out, "Trashed %s\n", id)
			return err
		})
	}
	return g.Wait()
}

// ExecuteRules writes the built-in metric threshold table.
func ExecuteRules(_ context.Context, cfg *contract.Config) error {
	return outwriter.WriteRules(algo.DefaultRules.Rules(), cfg)
}

// ExecuteFlatten flattens one record and writes the resulting path/value pairs.
func ExecuteFlatten(_ context.Context, cfg *contract.Config, r schema.Record) error {
	flat := algo.Flattener{Disambiguate: cfg.Disambiguate}.Flatten(r)
	return outwriter.WriteFlatMap(flat, cfg)
}
