package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModel_Default(t *testing.T) {
	*modelFile = ""
	model, err := LoadModel()
	if err != nil {
		t.Fatalf("LoadModel() error: %v", err)
	}
	if got, ok := model.Resolve("QQQ"); !ok || got != "VTSAX" {
		t.Errorf("built-in model Resolve(QQQ) = (%q, %t), want (VTSAX, true)", got, ok)
	}
}

func TestLoadModel_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")
	content := `
currency = "USD"

[[target]]
symbol = "A"
name = "Alpha Fund"
percent = 100
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	*modelFile = path
	defer func() { *modelFile = "" }()

	model, err := LoadModel()
	if err != nil {
		t.Fatalf("LoadModel() error: %v", err)
	}
	if got, ok := model.Resolve("A"); !ok || got != "A" {
		t.Errorf("Resolve(A) = (%q, %t), want (A, true)", got, ok)
	}
}

func TestLoadModel_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.toml")
	content := `
[[target]]
symbol = "A"
name = "Alpha Fund"
percent = 60
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	*modelFile = path
	defer func() { *modelFile = "" }()

	if _, err := LoadModel(); err == nil {
		t.Fatal("LoadModel() should have failed on percentages not summing to 100")
	}
}
