package models

// StructureLevel controls how much structuring the model is asked to apply
type StructureLevel string

const (
	StructureBasic         StructureLevel = "basic"
	StructureDetailed      StructureLevel = "detailed"
	StructureComprehensive StructureLevel = "comprehensive"
)

// EnhancementSettings are the caller-controlled enhancement toggles
type EnhancementSettings struct {
	IncludeDefinitions     bool           `json:"includeDefinitions"`
	GenerateQuestions      bool           `json:"generateQuestions"`
	CreateSummary          bool           `json:"createSummary"`
	AddExamples            bool           `json:"addExamples"`
	StructureLevel         StructureLevel `json:"structureLevel"`
	AutoGenerateFlashcards bool           `json:"autoGenerateFlashcards"`
}

// BasicSettings returns the preset every unpaid caller is limited to
func BasicSettings() EnhancementSettings {
	return EnhancementSettings{
		IncludeDefinitions:     true,
		GenerateQuestions:      false,
		CreateSummary:          false,
		AddExamples:            false,
		StructureLevel:         StructureBasic,
		AutoGenerateFlashcards: false,
	}
}

// EnhancementRequest is the body of POST /api/notes/enhance
type EnhancementRequest struct {
	NoteID              string              `json:"noteId"`
	OriginalContent     string              `json:"originalContent"`
	Subject             string              `json:"subject"`
	EnhancementSettings EnhancementSettings `json:"enhancementSettings"`
}

// EnhancementResult is the response body for every outcome of an enhancement request.
// Success fields are pointers so that a legitimate zero or empty string is still sent.
type EnhancementResult struct {
	Success         bool    `json:"success"`
	EnhancedContent *string `json:"enhancedContent,omitempty"`
	ProcessingTime  *int    `json:"processingTime,omitempty"`
	WordCount       *int    `json:"wordCount,omitempty"`
	Error           string  `json:"error,omitempty"`
	Details         string  `json:"details,omitempty"`
	EstimatedTokens *int    `json:"estimatedTokens,omitempty"`
	MaxTokens       *int    `json:"maxTokens,omitempty"`
}
