package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("BASKET_DIR", tmp)
	t.Setenv("XDG_DATA_HOME", "")
	return tmp
}

func TestSaveReadAndVerify(t *testing.T) {
	tmp := setupEnv(t)
	at := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)

	path, hash, err := Save("", []byte(`{"version":"1"}`), at)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	want := filepath.Join(tmp, "backups", "basket-backup-2025-03-10-083000.json")
	if path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(content) != `{"version":"1"}` {
		t.Fatalf("unexpected content %q", content)
	}

	ok, err := VerifyFile(path, strings.ToUpper(hash))
	if err != nil || !ok {
		t.Fatalf("VerifyFile expected true, got %v (err=%v)", ok, err)
	}

	if err := os.WriteFile(path, []byte("tampered"), 0o600); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	ok, err = VerifyFile(path, hash)
	if err != nil || ok {
		t.Fatalf("VerifyFile expected false for modified file, got %v (err=%v)", ok, err)
	}
}

func TestSaveToExplicitPath(t *testing.T) {
	setupEnv(t)
	target := filepath.Join(t.TempDir(), "nested", "out.json")

	path, _, err := Save(target, []byte("{}"), time.Now())
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != target || !FileExists(target) {
		t.Fatalf("expected snapshot at %s", target)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	setupEnv(t)
	ok, err := VerifyFile(filepath.Join(t.TempDir(), "missing.json"), "abc")
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestListNewestFirst(t *testing.T) {
	tmp := setupEnv(t)

	files, err := List()
	if err != nil || len(files) != 0 {
		t.Fatalf("expected no backups before the first export, got %d (err=%v)", len(files), err)
	}

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, _, err := Save("", []byte("{}"), base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tmp, "backups", "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	files, err = List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(files))
	}
	if files[0].Name != FileName(base.Add(2*time.Hour)) {
		t.Fatalf("expected newest first, got %s", files[0].Name)
	}
}
