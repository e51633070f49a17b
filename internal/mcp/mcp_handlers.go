package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/core/algo"
	"github.com/huangsam/scorecard/internal/assist"
	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.ExperimentSource
}

// classification is the classify_metric result.
type classification struct {
	Metric  string         `json:"metric"`
	Value   float64        `json:"value"`
	Verdict schema.Verdict `json:"verdict"`
	Known   bool           `json:"known"`
	Good    string         `json:"good,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Bad     string         `json:"bad,omitempty"`
}

func (h *toolHandler) handleCompareExperiments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Filter = request.GetString("filter", cfg.Filter)
	if c := request.GetString("columns", ""); c != "" {
		cfg.Columns = schema.ColumnStrategy(strings.ToLower(c))
		if _, ok := schema.ValidColumnStrategies[cfg.Columns]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid columns strategy '%s'. must be first, union", c)), nil
		}
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = min(l, contract.MaxResultLimit)
	}
	// Specs are part of the JSON answer.
	cfg.Output = schema.JSONOut

	table, err := core.CompareTable(ctx, cfg, h.src)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyMetric(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metric, err := request.RequireString("metric")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := request.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := classification{
		Metric:  metric,
		Value:   value,
		Verdict: algo.Classify(metric, value),
	}
	if rule, ok := algo.DefaultRules.Rule(metric); ok {
		result.Known = true
		result.Good = rule.Describe(schema.GoodVerdict)
		result.Warning = rule.Describe(schema.WarningVerdict)
		result.Bad = rule.Describe(schema.BadVerdict)
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFlattenRecord(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	record, err := assist.DecodeRecord([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid record: %v", err)), nil
	}

	flattener := algo.Flattener{Disambiguate: request.GetBool("disambiguate", h.baseCfg.Disambiguate)}
	jsonData, err := json.MarshalIndent(flattener.Flatten(record), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("flatten failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDeleteExperiment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.src.Delete(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}
	contract.Logger().Infow("trashed experiment", "id", id, "via", "mcp")
	return mcp.NewToolResultText(fmt.Sprintf("Trashed %s", id)), nil
}
