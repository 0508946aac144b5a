package networth

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	p, err := LoadPortfolio(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(slices.Collect(p.Assets())); n != 0 {
		t.Errorf("assets = %d, want 0", n)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "portfolio.json")
	p := testPortfolio(t)

	if err := SavePortfolio(path, p); err != nil {
		t.Fatal(err)
	}
	back, err := LoadPortfolio(path)
	if err != nil {
		t.Fatal(err)
	}
	samePortfolio(t, back, p)

	// no stray temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file left behind after save")
	}
}

func TestSaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	p := testPortfolio(t)
	if err := SavePortfolio(path, p); err != nil {
		t.Fatal(err)
	}

	if err := p.AddAsset("new", "New Asset", "etf", "USD"); err != nil {
		t.Fatal(err)
	}
	if err := SavePortfolio(path, p); err != nil {
		t.Fatal(err)
	}
	back, err := LoadPortfolio(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := back.Asset("new"); !ok {
		t.Error("second save not visible on load")
	}
}

func TestSaveRejectsInvalidPortfolio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	good := testPortfolio(t)
	if err := SavePortfolio(path, good); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// corrupt a portfolio by hand to bypass the guarded mutators.
	bad := testPortfolio(t)
	bad.assets = append(bad.assets, Asset{ID: "vti", Name: "Dup", Category: "etf", Currency: "USD"})
	if err := SavePortfolio(path, bad); !errors.Is(err, ErrInvalidPortfolio) {
		t.Fatalf("got %v, want ErrInvalidPortfolio", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed save must leave the previous file untouched")
	}
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPortfolio(path)
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("got %v, want ErrCorruptData", err)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Skip("no user config dir in this environment")
	}
	if filepath.Base(path) != "portfolio.json" {
		t.Errorf("unexpected default path %q", path)
	}
}
