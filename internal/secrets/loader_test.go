package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Name: "api key", Value: "  abc123  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "abc123" {
		t.Fatalf("expected trimmed secret, got %q", secret)
	}
}

func TestLoadFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	secret, err := Load(Source{Name: "api key", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "from-file" {
		t.Fatalf("expected file value, got %q", secret)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Source{Name: "api key", File: path})
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("DOCINTEL_TEST_SECRET", " from-env ")

	secret, err := Load(Source{Name: "api key", Env: "DOCINTEL_TEST_SECRET"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "from-env" {
		t.Fatalf("expected env value, got %q", secret)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(Source{Name: "api key"})
	if err == nil {
		t.Fatal("expected error when nothing configured")
	}
	if !strings.Contains(err.Error(), "api key is not configured") {
		t.Fatalf("unexpected error: %v", err)
	}
}
