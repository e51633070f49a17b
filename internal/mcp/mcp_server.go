// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Scorecard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.ExperimentSource) *server.MCPServer {
	s := server.NewMCPServer(
		"Scorecard Experiment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	// --- 1. Tool: compare_experiments ---
	s.AddTool(mcp.NewTool("compare_experiments",
		mcp.WithDescription("Fetch stored experiments and return the scored comparison table as JSON."),
		mcp.WithString("filter", mcp.Description("Keep experiments whose name, id or values contain this text (case-insensitive).")),
		mcp.WithString("columns", mcp.Description("Column strategy. Defaults to 'first'."), mcp.Enum("first", "union")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of experiments returned.")),
	), h.handleCompareExperiments)

	// --- 2. Tool: classify_metric ---
	s.AddTool(mcp.NewTool("classify_metric",
		mcp.WithDescription("Classify one metric value as good, warning, bad or none using the built-in thresholds."),
		mcp.WithString("metric", mcp.Description("Exact metric name, e.g. 'R2' or 'durbin_watson'."), mcp.Required()),
		mcp.WithNumber("value", mcp.Description("The metric value."), mcp.Required()),
	), h.handleClassifyMetric)

	// --- 3. Tool: flatten_record ---
	s.AddTool(mcp.NewTool("flatten_record",
		mcp.WithDescription("Flatten a nested JSON record into ordered path/value pairs."),
		mcp.WithString("record", mcp.Description("The record as a JSON document."), mcp.Required()),
		mcp.WithBoolean("disambiguate", mcp.Description("Suffix colliding paths with ' (2)', ' (3)' instead of overwriting.")),
	), h.handleFlattenRecord)

	// --- 4. Tool: delete_experiment ---
	s.AddTool(mcp.NewTool("delete_experiment",
		mcp.WithDescription("Move a stored experiment to the trash."),
		mcp.WithString("id", mcp.Description("The experiment id."), mcp.Required()),
		mcp.WithDestructiveHintAnnotation(true),
	), h.handleDeleteExperiment)

	return s
}

// StartMCPServer starts the Scorecard MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.ExperimentSource) error {
	s := NewMCPServer(baseCfg, src)
	return server.ServeStdio(s)
}
