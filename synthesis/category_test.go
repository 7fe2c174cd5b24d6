package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osservatorio/observer/core"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want core.CategoryLabel
	}{
		{"LLM", core.CategoryLLM},
		{"llm-news", core.CategoryLLM},
		{"Large Language Models", core.CategoryLLM},
		{"Frameworks", core.CategoryFrameworks},
		{"AI framework", core.CategoryFrameworks},
		{"Hardware", core.CategoryHardware},
		{"GPU e acceleratori", core.CategoryHardware},
		{"mini PC", core.CategoryHardware},
		{"Market", core.CategoryMarket},
		{"analisi di mercato", core.CategoryMarket},
		{"Other", core.CategoryOther},
		{"robotica", core.CategoryOther},
		{"", core.CategoryOther},
		{"  LLM  ", core.CategoryLLM},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.raw), "NormalizeCategory(%q)", tt.raw)
	}
}
