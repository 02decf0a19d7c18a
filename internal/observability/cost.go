package observability

import (
	"strconv"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	// GPT-4o pricing
	gpt4oInputPrice  = 0.0025
	gpt4oOutputPrice = 0.01

	// GPT-4o-mini pricing
	gpt4oMiniInputPrice  = 0.00015
	gpt4oMiniOutputPrice = 0.0006

	// GPT-4.1-mini pricing
	gpt41MiniInputPrice  = 0.0004
	gpt41MiniOutputPrice = 0.0016

	// GPT-3.5-turbo pricing
	gpt35InputPrice  = 0.0005
	gpt35OutputPrice = 0.0015

	// Gemini 2.5 pricing
	gemini25FlashInputPrice  = 0.0003
	gemini25FlashOutputPrice = 0.0025
	gemini25ProInputPrice    = 0.00125
	gemini25ProOutputPrice   = 0.01
)

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for all models
var PricingTable = map[string]ModelPricing{
	"gpt-4o":           {InputPricePer1K: gpt4oInputPrice, OutputPricePer1K: gpt4oOutputPrice},
	"gpt-4o-mini":      {InputPricePer1K: gpt4oMiniInputPrice, OutputPricePer1K: gpt4oMiniOutputPrice},
	"gpt-4.1-mini":     {InputPricePer1K: gpt41MiniInputPrice, OutputPricePer1K: gpt41MiniOutputPrice},
	"gpt-3.5-turbo":    {InputPricePer1K: gpt35InputPrice, OutputPricePer1K: gpt35OutputPrice},
	"gemini-2.5-flash": {InputPricePer1K: gemini25FlashInputPrice, OutputPricePer1K: gemini25FlashOutputPrice},
	"gemini-2.5-pro":   {InputPricePer1K: gemini25ProInputPrice, OutputPricePer1K: gemini25ProOutputPrice},
}

// CalculateCost calculates the cost in USD of one completion.
// Unknown models are priced as gpt-4o-mini; nil usage costs nothing.
func CalculateCost(model string, usage *llm.Usage) float64 {
	if usage == nil {
		return 0
	}

	pricing, exists := PricingTable[model]
	if !exists {
		pricing = PricingTable["gpt-4o-mini"]
	}

	inputCost := (float64(usage.InputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K
	return inputCost + outputCost
}

// FormatCost formats a cost for logs and trace metadata
func FormatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', costFormatPrecision, 64)
}
