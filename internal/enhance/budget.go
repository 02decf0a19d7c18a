package enhance

import (
	"fmt"
	"unicode/utf8"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
)

// CharsPerToken is the fixed characters-per-token heuristic. It is used both to
// estimate tokens from content and to convert the token ceiling back to characters.
const CharsPerToken = 4

// BudgetError reports content whose estimate exceeds the model's input ceiling
type BudgetError struct {
	EstimatedTokens int
	MaxInputTokens  int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("estimated %d tokens exceeds input limit of %d tokens", e.EstimatedTokens, e.MaxInputTokens)
}

// MaxChars is the approximate character ceiling shown to the caller
func (e *BudgetError) MaxChars() int {
	return e.MaxInputTokens * CharsPerToken
}

// EstimateTokens approximates the token count as ceil(chars/4), counting
// characters (runes) rather than bytes.
func EstimateTokens(content string) int {
	return (CharCount(content) + CharsPerToken - 1) / CharsPerToken
}

// CharCount is the character length used by the budget gate
func CharCount(content string) int {
	return utf8.RuneCountInString(content)
}

// CheckBudget returns the estimate, or a *BudgetError when it exceeds the model's ceiling
func CheckBudget(content string, model llm.ModelConfig) (int, error) {
	estimated := EstimateTokens(content)
	if estimated > model.MaxInputTokens {
		return estimated, &BudgetError{EstimatedTokens: estimated, MaxInputTokens: model.MaxInputTokens}
	}
	return estimated, nil
}
