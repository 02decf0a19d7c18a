package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
)

// Fixed prompt sections, in the order they appear
const (
	preamble = "You are an AI assistant specialized in enhancing student notes for better learning and retention."

	subjectSentence = "The subject of these notes is: "

	framingSentence = "Please enhance this content to make it clearer, better organized, and more useful for studying, " +
		"while preserving all of the original information."

	originalContentHeader = "Original content:\n"

	instructionsHeader = "Enhancement instructions:"

	formattingDirectives = `Formatting requirements:
- Format the entire response in Markdown.
- If definitions are included, write each one as **Term**: Definition.
- If study questions are included, place them under a "### Study Questions" header as a numbered list.
- If a summary is included, place it under a "### Summary" header as a bulleted list.`
)

// Enhancement instruction fragments
const (
	comprehensiveStructureInstruction = "Restructure the content comprehensively: organize it under clear headings and subheadings, " +
		"use bullet points for lists of related ideas, and arrange sections in a logical flow that maximizes readability."

	detailedStructureInstruction = "Improve the structure of the content by adding clear headings and using bullet points where appropriate."

	definitionsInstruction = "Identify the key terms and concepts in the content and provide a concise definition for each, " +
		"using the format **Term**: Definition."

	questionsInstruction = "Generate 3-5 study questions that test understanding of the material, " +
		"mixing factual recall questions with conceptual questions."

	summaryInstruction = "Add a brief summary at the end of each major section that captures its key points."

	examplesInstruction = "Add concrete examples or analogies that illustrate the abstract concepts in the content."
)

// Builder composes the enhancement prompt
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{
		loader: NewPromptLoader(),
	}
}

// SystemMessage returns the system message sent alongside the prompt
func (b *Builder) SystemMessage() string {
	return b.loader.GetSystemPrompt()
}

// BuildEnhancementPrompt assembles the user prompt. The output is a pure
// function of its inputs; section order is fixed.
func (b *Builder) BuildEnhancementPrompt(subject, originalContent string, settings models.EnhancementSettings) string {
	sections := []string{
		preamble,
		subjectSentence + subject + ".",
		framingSentence,
		originalContentHeader + originalContent,
	}
	// No enabled instructions means no instruction block at all, header included
	if instructions := EnhancementInstructions(settings); len(instructions) > 0 {
		sections = append(sections, instructionsHeader+"\n"+strings.Join(instructions, "\n\n"))
	}
	sections = append(sections, formattingDirectives)
	return strings.Join(sections, "\n\n")
}

// EnhancementInstructions returns the instruction fragments enabled by settings,
// in precedence order. Basic structure contributes nothing.
func EnhancementInstructions(settings models.EnhancementSettings) []string {
	instructions := []string{}

	switch settings.StructureLevel {
	case models.StructureComprehensive:
		instructions = append(instructions, comprehensiveStructureInstruction)
	case models.StructureDetailed:
		instructions = append(instructions, detailedStructureInstruction)
	}

	if settings.IncludeDefinitions {
		instructions = append(instructions, definitionsInstruction)
	}
	if settings.GenerateQuestions {
		instructions = append(instructions, questionsInstruction)
	}
	if settings.CreateSummary {
		instructions = append(instructions, summaryInstruction)
	}
	if settings.AddExamples {
		instructions = append(instructions, examplesInstruction)
	}

	return instructions
}
