package enhance

import (
	"strings"
	"testing"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{10000, 2500},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTokens(strings.Repeat("a", tt.length)), "length %d", tt.length)
	}
}

func TestEstimateTokensCountsCharactersNotBytes(t *testing.T) {
	assert.Equal(t, 4, CharCount("éééé"))
	assert.Equal(t, 1, EstimateTokens(strings.Repeat("é", 4)))
	assert.Equal(t, 2, EstimateTokens(strings.Repeat("漢", 5)))
	assert.Equal(t, 1, EstimateTokens("🧬"))
	assert.Equal(t, 3, EstimateTokens("naïve café"))
}

func TestCheckBudgetNonASCIIAtCeiling(t *testing.T) {
	model := llm.ModelConfig{Name: "Tiny", MaxInputTokens: 2000, MaxOutputTokens: 500}

	estimated, err := CheckBudget(strings.Repeat("漢", 8000), model)
	require.NoError(t, err)
	assert.Equal(t, 2000, estimated)

	estimated, err = CheckBudget(strings.Repeat("漢", 8001), model)
	require.Error(t, err)
	assert.Equal(t, 2001, estimated)
}

func TestCheckBudget(t *testing.T) {
	model := llm.ModelConfig{Name: "Tiny", MaxInputTokens: 2000, MaxOutputTokens: 500}

	estimated, err := CheckBudget("", model)
	require.NoError(t, err)
	assert.Equal(t, 0, estimated)

	// Exactly at the ceiling passes
	estimated, err = CheckBudget(strings.Repeat("a", 8000), model)
	require.NoError(t, err)
	assert.Equal(t, 2000, estimated)

	estimated, err = CheckBudget(strings.Repeat("a", 10000), model)
	require.Error(t, err)
	assert.Equal(t, 2500, estimated)

	var budgetErr *BudgetError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, 2500, budgetErr.EstimatedTokens)
	assert.Equal(t, 2000, budgetErr.MaxInputTokens)
	assert.Equal(t, 8000, budgetErr.MaxChars())
}

func TestCheckBudgetEmptyContentAlwaysPasses(t *testing.T) {
	_, err := CheckBudget("", llm.ModelConfig{MaxInputTokens: 0})
	assert.NoError(t, err)
}
