package enhance

import (
	"testing"

	"github.com/Conceptual-Machines/notes-enhance-api/internal/models"
	"github.com/stretchr/testify/assert"
)

var requestedSettings = []models.EnhancementSettings{
	{},
	models.BasicSettings(),
	{IncludeDefinitions: false, GenerateQuestions: true, StructureLevel: models.StructureDetailed},
	{IncludeDefinitions: true, GenerateQuestions: true, CreateSummary: true, AddExamples: true,
		StructureLevel: models.StructureComprehensive, AutoGenerateFlashcards: true},
	{StructureLevel: "unrecognised", AddExamples: true},
}

func TestNormalizeSettingsUnpaidAlwaysBasic(t *testing.T) {
	want := models.EnhancementSettings{
		IncludeDefinitions:     true,
		GenerateQuestions:      false,
		CreateSummary:          false,
		AddExamples:            false,
		StructureLevel:         models.StructureBasic,
		AutoGenerateFlashcards: false,
	}

	for _, requested := range requestedSettings {
		got := NormalizeSettings(false, requested)
		assert.Equal(t, want, got)

		// Collapsing twice changes nothing
		assert.Equal(t, got, NormalizeSettings(false, got))
	}
}

func TestNormalizeSettingsPaidPassThrough(t *testing.T) {
	for _, requested := range requestedSettings {
		assert.Equal(t, requested, NormalizeSettings(true, requested))
	}
}

func TestNormalizeSettingsDoesNotMutateInput(t *testing.T) {
	requested := models.EnhancementSettings{GenerateQuestions: true, StructureLevel: models.StructureComprehensive}
	before := requested

	_ = NormalizeSettings(false, requested)
	assert.Equal(t, before, requested)
}
