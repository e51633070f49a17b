// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/scorecard/schema"
)

// ExperimentSource defines the operations scorecard needs from wherever experiments live.
// This allows the table logic to be tested without a running assist service.
type ExperimentSource interface {
	// Fetch returns every stored experiment in service order.
	Fetch(ctx context.Context) ([]schema.Experiment, error)

	// Delete removes the experiment with the given id.
	Delete(ctx context.Context, id string) error
}
