package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zambiatennis/ztaweb/models"
)

// defaultEvents backs the calendar when no events file is usable.
var defaultEvents = []models.Event{
	{
		Title:       "National Championships",
		Start:       "2025-08-20",
		End:         "2025-08-24",
		Location:    "Lusaka National Tennis Centre",
		Category:    "ZTA SENIOR",
		Description: "The annual national championships featuring singles and doubles events for men and women.",
	},
	{
		Title:       "Youth Development Camp",
		Start:       "2025-09-15",
		End:         "2025-09-19",
		Location:    "Copperbelt Tennis Academy, Ndola",
		Category:    "TRAINING",
		Description: "A training camp for junior players focusing on skill development, fitness and mental preparation.",
	},
	{
		Title:       "Coaches Certification Course",
		Start:       "2025-10-05",
		End:         "2025-10-08",
		Location:    "Livingstone Sports Complex",
		Category:    "TRAINING",
		Description: "An ITF accredited certification course for tennis coaches seeking to upgrade their qualifications.",
	},
}

// DefaultEvents returns a copy of the built-in fallback events.
func DefaultEvents() []models.Event {
	out := make([]models.Event, len(defaultEvents))
	copy(out, defaultEvents)
	return out
}

// LoadResult reports where the events list came from. FromFallback with a
// non-nil Reason distinguishes "file missing" from "file corrupt" without
// swallowing either.
type LoadResult struct {
	Events       []models.Event
	FromFallback bool
	Reason       error // nil when Events came from the file
}

// LoadEvents reads the events file at path. On any read or parse error it
// returns the built-in defaults instead; the error is carried in Reason
// for logging but never propagated.
func LoadEvents(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{
			Events:       DefaultEvents(),
			FromFallback: true,
			Reason:       fmt.Errorf("read events file: %w", err),
		}
	}

	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return LoadResult{
			Events:       DefaultEvents(),
			FromFallback: true,
			Reason:       fmt.Errorf("parse events file: %w", err),
		}
	}

	return LoadResult{Events: events}
}
