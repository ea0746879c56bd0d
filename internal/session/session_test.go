package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	s, err := Load(path)
	if err != nil || s != nil {
		t.Fatalf("Load() on missing file = %+v, %v; want nil, nil", s, err)
	}

	want := &Session{Token: "tok-123", Name: "ana", Email: "ana@example.com"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("session file mode = %o, want 600", perm)
		}
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	if err := Clear(path); err != nil {
		t.Fatalf("Clear() unexpected error: %v", err)
	}
	if err := Clear(path); err != nil {
		t.Errorf("Clear() twice should not fail: %v", err)
	}
	if s, _ := Load(path); s != nil {
		t.Errorf("Load() after Clear = %+v, want nil", s)
	}
}

func TestSave_RequiresToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Save(path, &Session{Name: "ana"}); err == nil {
		t.Error("Save() without token should have returned error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() without token should not create the file")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() on corrupt file should have returned error")
	}
}

func TestPath_UsesDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "image-translator", FileName); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
