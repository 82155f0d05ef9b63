package diagram

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// fakeIntrospector serves listings from javap fixtures keyed by class path.
type fakeIntrospector struct {
	mu       sync.Mutex
	listings map[string]string
	calls    map[string]int
}

func newFakeIntrospector(t *testing.T, classes map[string]string) *fakeIntrospector {
	t.Helper()
	f := &fakeIntrospector{listings: map[string]string{}, calls: map[string]int{}}
	for path, fixture := range classes {
		data, err := os.ReadFile(filepath.Join("..", "javap", "testdata", fixture))
		if err != nil {
			t.Fatalf("Failed to read fixture: %v", err)
		}
		f.listings[path] = string(data)
	}
	return f
}

func (f *fakeIntrospector) Describe(ctx context.Context, classFile string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[classFile]++
	listing, ok := f.listings[classFile]
	if !ok {
		return "", fmt.Errorf("open class file: %w", fs.ErrNotExist)
	}
	return listing, nil
}
