// Package analyze derives a best-effort structural analysis of document text.
// Every pass is an independent heuristic over normalized text with no
// correctness guarantee; the output exists to seed test-question generation.
package analyze

// Analysis aggregates the independent extraction passes for one document.
type Analysis struct {
	Characters []string `json:"characters"`
	Locations  []string `json:"locations"`
	Themes     []string `json:"themes"`
	KeyEvents  []string `json:"keyEvents"`
	Entities   Entities `json:"entities"`
}

// Entities holds salient non-character items found in the text.
type Entities struct {
	Objects []string `json:"objects"`
}

// Document runs all extraction passes over the text. Passes are
// order-independent and may both over- and under-match.
func Document(text string) Analysis {
	return Analysis{
		Characters: Characters(text),
		Locations:  Locations(text),
		Themes:     Themes(text),
		KeyEvents:  KeyEvents(text),
		Entities: Entities{
			Objects: Objects(text),
		},
	}
}
