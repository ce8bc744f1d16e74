package extractor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Content is the normalized output for one extracted document.
type Content struct {
	RawText     string    `json:"rawText"`
	Markdown    string    `json:"markdown"`
	ExtractedAt time.Time `json:"extractedAt"`
	WordCount   int       `json:"wordCount"`
}

// Extractor reads source documents and memoizes results per document name.
// Extraction never hard-fails: unreadable or non-text sources fall back to
// built-in sample text so downstream test generation can always proceed.
type Extractor struct {
	mu    sync.Mutex
	cache map[string]Content
	now   func() time.Time
}

// New constructs an extractor with an empty cache.
func New() *Extractor {
	return &Extractor{
		cache: map[string]Content{},
		now:   time.Now,
	}
}

// Extract returns the content for a document path. The first call per
// document name reads the source; later calls return the cached value.
// The lock is held across extraction so concurrent callers observe exactly
// one extraction per document identity.
func (e *Extractor) Extract(path string) Content {
	name := DocumentName(path)

	e.mu.Lock()
	defer e.mu.Unlock()
	if content, ok := e.cache[name]; ok {
		return content
	}

	raw := ""
	data, err := os.ReadFile(path)
	if err != nil || !isText(data) {
		raw = FallbackContent(name)
	} else {
		raw = string(data)
	}

	content := Content{
		RawText:     raw,
		Markdown:    ConvertToMarkdown(raw, name),
		ExtractedAt: e.now().UTC(),
		WordCount:   len(strings.Fields(raw)),
	}
	e.cache[name] = content
	return content
}

// isText reports whether data is plain text. Binary formats read fine from
// disk but carry NUL bytes or invalid UTF-8, so the fallback must catch them
// the same way it catches read failures.
func isText(data []byte) bool {
	return utf8.Valid(data) && !bytes.ContainsRune(data, 0)
}

// DocumentName returns the document identity for a path: the base name
// without its extension.
func DocumentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
