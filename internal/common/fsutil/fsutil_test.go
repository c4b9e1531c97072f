package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	return home
}

func TestExpandHome(t *testing.T) {
	home := setHome(t)
	cases := map[string]string{
		"":                 "",
		"/tmp":             "/tmp",
		"data/models.json": "data/models.json",
		"~other/x":         "~other/x",
		"~":                home,
		"~/boards/m.json":  filepath.Join(home, "boards", "m.json"),
	}
	for in, want := range cases {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	got, err := Resolve("models.json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !filepath.IsAbs(got) || filepath.Base(got) != "models.json" {
		t.Fatalf("unexpected resolved path %q", got)
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	if !PathExists(d) {
		t.Fatalf("expected %s to exist", d)
	}
	if PathExists(filepath.Join(d, "missing")) {
		t.Fatalf("expected missing path to not exist")
	}
}

func TestWriteAtomicAndRead(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "nested", "dir", "out.xml")
	if err := WriteAtomic(p, []byte("one")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteAtomic(p, []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, err := ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "two" {
		t.Fatalf("got %q", b)
	}
	entries, _ := os.ReadDir(filepath.Dir(p))
	if len(entries) != 1 {
		t.Fatalf("expected no temp files left behind, got %d entries", len(entries))
	}
}

func TestReadFileHome(t *testing.T) {
	home := setHome(t)
	if err := os.WriteFile(filepath.Join(home, "m.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := ReadFile("~/m.json")
	if err != nil || string(b) != "[]" {
		t.Fatalf("got %q err=%v", b, err)
	}
}
