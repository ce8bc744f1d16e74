package analyze

import (
	"strings"
	"testing"
)

const sampleText = `Once upon a time in a magical kingdom, there lived a brave young hero named Alex.
Alex embarked on a quest to find the legendary Crystal of Light.
Maya, a wise wizard, provided guidance while Dr. Sarah Chen studied the ancient map.
The team discovered that the village of Meridian was built near underground caves.
After many trials, Alex defeated the dark forces and learned the value of friendship with every companion.`

// TestCharacters verifies name extraction across the appositive, honorific,
// and attribution patterns.
func TestCharacters(t *testing.T) {
	characters := Characters(sampleText)
	want := map[string]bool{"Alex": false, "Maya": false, "Sarah Chen": false}
	for _, name := range characters {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected character %q in %v", name, characters)
		}
	}
}

// TestCharactersDedup verifies repeated matches appear once.
func TestCharactersDedup(t *testing.T) {
	text := "Alex was brave. Alex said hello. Alex told stories."
	characters := Characters(text)
	count := 0
	for _, name := range characters {
		if name == "Alex" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Alex once, got %v", characters)
	}
}

// TestLocations verifies place extraction near location nouns.
func TestLocations(t *testing.T) {
	text := "They met in the Silverwood forest and later reached the village of Meridian."
	locations := Locations(text)
	found := map[string]bool{}
	for _, location := range locations {
		found[location] = true
	}
	if !found["Silverwood"] {
		t.Fatalf("expected Silverwood in %v", locations)
	}
	if !found["Meridian"] {
		t.Fatalf("expected Meridian in %v", locations)
	}
}

// TestThemes verifies keyword-bag matching in declaration order.
func TestThemes(t *testing.T) {
	themes := Themes("A brave hero set out on a quest to learn magic.")
	if len(themes) == 0 {
		t.Fatalf("expected themes")
	}
	order := map[string]int{}
	for i, theme := range themes {
		order[theme] = i
	}
	for _, theme := range []string{"adventure", "courage", "magic", "growth"} {
		if _, ok := order[theme]; !ok {
			t.Fatalf("expected theme %q in %v", theme, themes)
		}
	}
	if order["adventure"] > order["courage"] {
		t.Fatalf("expected declaration order, got %v", themes)
	}
}

// TestThemesEmpty verifies no match yields an empty slice.
func TestThemesEmpty(t *testing.T) {
	if themes := Themes("plain text without any triggers"); len(themes) != 0 {
		t.Fatalf("expected no themes, got %v", themes)
	}
}

// TestKeyEventsCapAndTruncation verifies the five-event cap and the
// 150-character truncation marker.
func TestKeyEventsCapAndTruncation(t *testing.T) {
	long := "The explorers discovered " + strings.Repeat("a very long trail of clues ", 10) + "inside the ruins"
	var parts []string
	for i := 0; i < 7; i++ {
		parts = append(parts, "The team discovered another hidden chamber beneath the temple floor")
	}
	parts = append(parts, long)
	text := strings.Join(parts, ". ") + "."

	events := KeyEvents(text)
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	truncated := KeyEvents(long + ".")
	if len(truncated) != 1 {
		t.Fatalf("expected one event, got %d", len(truncated))
	}
	if !strings.HasSuffix(truncated[0], "...") {
		t.Fatalf("expected truncation marker, got %q", truncated[0])
	}
	if len(truncated[0]) != keyEventMaxLen+3 {
		t.Fatalf("expected %d chars, got %d", keyEventMaxLen+3, len(truncated[0]))
	}
}

// TestObjects verifies the fixed noun list and "the X of Y" pattern.
func TestObjects(t *testing.T) {
	objects := Objects("Alex found the Crystal of Light and a golden sword near the treasure.")
	joined := strings.Join(objects, "|")
	if !strings.Contains(joined, "sword") {
		t.Fatalf("expected sword in %v", objects)
	}
	if !strings.Contains(joined, "Crystal of Light") {
		t.Fatalf("expected Crystal of Light in %v", objects)
	}
}

// TestDocumentCombinesPasses verifies the aggregate analysis.
func TestDocumentCombinesPasses(t *testing.T) {
	analysis := Document(sampleText)
	if len(analysis.Characters) == 0 {
		t.Fatalf("expected characters")
	}
	if len(analysis.Themes) == 0 {
		t.Fatalf("expected themes")
	}
	if len(analysis.KeyEvents) == 0 {
		t.Fatalf("expected key events")
	}
	if len(analysis.KeyEvents) > 5 {
		t.Fatalf("expected at most 5 key events, got %d", len(analysis.KeyEvents))
	}
}
