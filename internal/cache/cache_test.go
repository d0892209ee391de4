package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["lib/app.dart"] = "deadbeef"
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	// file should exist
	if _, err := os.Stat(filepath.Join(dir, ".logsweepcache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	// load again and verify
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := db2.Entries["lib/app.dart"]; got != "deadbeef" {
		t.Fatalf("unexpected entry: %q", got)
	}
}

func TestSavePrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	db := DB{Entries: map[string]string{"a.swift": "cafe"}}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "logsweepcache.json")); err != nil {
		t.Fatalf("cache not under .git: %v", err)
	}
}
