package enhance

import "github.com/Conceptual-Machines/notes-enhance-api/internal/models"

// NormalizeSettings returns the settings that actually apply. Paid callers get
// exactly what they asked for; everyone else gets the basic preset.
func NormalizeSettings(isPaid bool, requested models.EnhancementSettings) models.EnhancementSettings {
	if isPaid {
		return requested
	}
	return models.BasicSettings()
}
