package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const oneRecipe = `{"recipes":[{"id":"a","title":"A","suitable_for":{"cancer_types":["gastric"]}}],"advice":[]}`
const twoRecipes = `{"recipes":[{"id":"a","title":"A","suitable_for":{"cancer_types":["gastric"]}},{"id":"b","title":"B","suitable_for":{"cancer_types":["rectum"]}}],"advice":[]}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, path, oneRecipe)

	w, err := NewWatcher(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if n, _ := w.Current().Len(); n != 1 {
		t.Fatalf("expected 1 recipe, got %d", n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writeFile(t, path, twoRecipes)
	waitFor(t, func() bool {
		n, _ := w.Current().Len()
		return n == 2
	})
}

func TestWatcher_KeepsPreviousOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, path, oneRecipe)

	w, err := NewWatcher(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, path, `{"recipes":[{"id":""}]}`)
	if err := w.Reload(); err == nil {
		t.Fatal("expected reload error")
	}
	if n, _ := w.Current().Len(); n != 1 {
		t.Errorf("previous catalog should stay active, got %d recipes", n)
	}
	if w.Reloads() != 0 {
		t.Errorf("failed reload must not count, got %d", w.Reloads())
	}
}

func TestNewWatcher_MissingFile(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop()); err == nil {
		t.Error("expected error for missing file")
	}
}
