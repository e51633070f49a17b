package outwriter

import (
	"testing"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxNameWidth(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		numColumns int
		expected   int
	}{
		{"wide terminal is capped", 300, 2, contract.MaxNameLength},
		{"room for name", 100, 4, 100 - idColumnWidth - 4*scoreColumnWidth},
		{"narrow terminal keeps minimum", 40, 6, minNameWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxNameWidth(cfg, tt.numColumns))
		})
	}
}

func TestGetTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 132, GetTerminalWidth(&contract.Config{Width: 132}))
	assert.Positive(t, GetTerminalWidth(&contract.Config{}))
}
