package lsp

import (
	"strings"
	"sync"
)

// Documents holds the text of every open document, keyed by URI.
type Documents struct {
	mu    sync.RWMutex
	texts map[string]string
}

func NewDocuments() *Documents {
	return &Documents{texts: map[string]string{}}
}

func (d *Documents) Set(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[uri] = text
}

func (d *Documents) Delete(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.texts, uri)
}

func (d *Documents) Get(uri string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.texts[uri]
	return text, ok
}

// Line returns the zero-based line n of the document without its line
// terminator.
func (d *Documents) Line(uri string, n int) (string, bool) {
	text, ok := d.Get(uri)
	if !ok {
		return "", false
	}
	lines := strings.Split(text, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n], "\r"), true
}
