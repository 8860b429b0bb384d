package projects

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}

	ids := c.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
		}
	}

	p, ok := c.Lookup("task-board")
	if !ok {
		t.Fatal("task-board missing")
	}
	if p.Title != "Task Board" {
		t.Errorf("Title: got %q", p.Title)
	}
	if len(p.Tech) == 0 || len(p.Features) == 0 {
		t.Errorf("tech %v features %v, want both populated", p.Tech, p.Features)
	}
}

func TestLookupMiss(t *testing.T) {
	c := Default()
	if p, ok := c.Lookup("no-such-project"); ok {
		t.Errorf("Lookup miss returned %+v", p)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
demo:
  title: Demo
  tech: [Go]
  Features:
    - one
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p, ok := c.Lookup("demo")
	if !ok || p.Title != "Demo" || len(p.Features) != 1 {
		t.Errorf("got %+v, %v", p, ok)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len: got %d, want 0", c.Len())
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("[1, 2")); err == nil {
		t.Error("expected error for malformed data")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(`{"x": {"title": "X"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if p, ok := c.Lookup("x"); !ok || p.Title != "X" {
		t.Errorf("got %+v, %v", p, ok)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPreviewFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"images/projects/a.png": &fstest.MapFile{Data: []byte("png")},
	}
	tests := []struct {
		name string
		p    Project
		fsys fstest.MapFS
		want string
	}{
		{"present", Project{Path: "images/projects/a.png"}, fsys, "images/projects/a.png"},
		{"missing", Project{Path: "images/projects/b.png"}, fsys, FallbackPreview},
		{"no path", Project{}, fsys, FallbackPreview},
		{"no assets", Project{Path: "images/projects/a.png"}, nil, FallbackPreview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f = tt.fsys
			var got string
			if f == nil {
				got = Preview(tt.p, nil)
			} else {
				got = Preview(tt.p, f)
			}
			if got != tt.want {
				t.Errorf("Preview: got %q, want %q", got, tt.want)
			}
		})
	}
}
