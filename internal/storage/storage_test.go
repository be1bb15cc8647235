package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/planventura/eventos-api/internal/storage"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "/uploads/")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	path, err := store.Save(context.Background(), "cartel.JPG", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(path, "/uploads/") {
		t.Errorf("path = %q, want /uploads/ prefix", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("path = %q, want lowercased extension", path)
	}
	if strings.Contains(path, "cartel") {
		t.Errorf("path = %q must not leak the original name", path)
	}

	name := strings.TrimPrefix(path, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored blob: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ctx := context.Background()
	a, err := store.Save(ctx, "same.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := store.Save(ctx, "same.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a == b {
		t.Errorf("two uploads share the path %q", a)
	}
}

func TestDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := storage.NewDiskStore(dir, "/uploads"); err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("uploads dir not created: %v", err)
	}
}
