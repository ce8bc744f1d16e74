package analyze

import (
	"regexp"
	"strings"
)

var characterPatterns = []*regexp.Regexp{
	// "Alex, a brave": title-case token before an appositive.
	regexp.MustCompile(`\b([A-Z][a-z]+),?\s+(?:a|the|an)\s+[a-z]+`),
	// Honorific followed by one or two title-case names.
	regexp.MustCompile(`\b(?:Dr\.|Professor|Queen|King|Prince|Princess)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`named\s+([A-Z][a-z]+)`),
	// Attribution verbs after a title-case token.
	regexp.MustCompile(`\b([A-Z][a-z]+)\s+(?:was|is|had|said|told|asked)`),
}

// Characters extracts candidate character names.
func Characters(text string) []string {
	seen := map[string]struct{}{}
	characters := []string{}
	for _, pattern := range characterPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if len(name) <= 2 || len(name) >= 20 {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			characters = append(characters, name)
		}
	}
	return characters
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bin\s+(?:the\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?:kingdom|forest|village|city|mountain|cave)`),
	regexp.MustCompile(`(?:kingdom|village|city|town)\s+of\s+([A-Z][a-z]+)`),
	regexp.MustCompile(`\bat\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// Locations extracts candidate place names from prepositional phrases.
func Locations(text string) []string {
	seen := map[string]struct{}{}
	locations := []string{}
	for _, pattern := range locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			location := match[1]
			if len(location) <= 2 || len(location) >= 30 {
				continue
			}
			if _, ok := seen[location]; ok {
				continue
			}
			seen[location] = struct{}{}
			locations = append(locations, location)
		}
	}
	return locations
}

// themeCategories is the fixed keyword bag checked per theme, in output order.
var themeCategories = []struct {
	name     string
	keywords []string
}{
	{"adventure", []string{"quest", "journey", "adventure", "explore"}},
	{"friendship", []string{"friend", "companion", "together", "ally"}},
	{"courage", []string{"brave", "courage", "hero", "fear"}},
	{"mystery", []string{"mystery", "secret", "hidden", "discover"}},
	{"magic", []string{"magic", "spell", "wizard", "enchant"}},
	{"science", []string{"research", "discover", "knowledge", "study"}},
	{"conflict", []string{"battle", "fight", "enemy", "defeat"}},
	{"growth", []string{"learn", "grow", "develop", "change"}},
}

// Themes matches the text against the fixed theme categories.
func Themes(text string) []string {
	lower := strings.ToLower(text)
	themes := []string{}
	for _, category := range themeCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				themes = append(themes, category.name)
				break
			}
		}
	}
	return themes
}

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	eventTriggerPattern  = regexp.MustCompile(`(?i)discovered|found|revealed|began|started|embarked|defeated|overcame|solved|learned|realized|understood`)
)

const (
	maxKeyEvents   = 5
	keyEventMaxLen = 150
	keyEventMinLen = 30
	sentenceMinLen = 20
)

// KeyEvents extracts sentences containing trigger verbs, truncated and
// capped at five.
func KeyEvents(text string) []string {
	events := []string{}
	for _, sentence := range sentenceSplitPattern.Split(text, -1) {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) <= sentenceMinLen {
			continue
		}
		if !eventTriggerPattern.MatchString(trimmed) || len(trimmed) <= keyEventMinLen {
			continue
		}
		if len(trimmed) > keyEventMaxLen {
			events = append(events, trimmed[:keyEventMaxLen]+"...")
		} else {
			events = append(events, trimmed)
		}
		if len(events) == maxKeyEvents {
			break
		}
	}
	return events
}

var objectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(crystal|sword|book|map|treasure|artifact|scroll|gem)\b`),
	regexp.MustCompile(`\bthe\s+([A-Z][a-z]+(?:\s+of\s+[A-Z][a-z]+)?)\b`),
}

// Objects extracts salient items: a fixed noun list plus "the X [of Y]"
// phrases. Matches are kept in order of appearance, duplicates included.
func Objects(text string) []string {
	objects := []string{}
	for _, pattern := range objectPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if len(match[1]) > 3 {
				objects = append(objects, match[1])
			}
		}
	}
	return objects
}
