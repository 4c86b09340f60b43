package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "velox.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindVeloxTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeManifest(t, root, "[package]\nname = \"app\"\n")

	got, ok, err := findVeloxToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFindVeloxTomlMissing(t *testing.T) {
	_, ok, err := findVeloxToml(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("found a manifest in an empty tree")
	}
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "app"

[parse]
source-type = "module"
preserve-parens = false
jobs = 4
`)

	m, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Config.Package.Name != "app" {
		t.Fatalf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Parse.SourceType != "module" {
		t.Fatalf("source-type = %q", m.Config.Parse.SourceType)
	}
	if m.Config.Parse.PreserveParens == nil || *m.Config.Parse.PreserveParens {
		t.Fatal("preserve-parens not read")
	}
	if m.Config.Parse.Jobs != 4 {
		t.Fatalf("jobs = %d", m.Config.Parse.Jobs)
	}
}

func TestLoadProjectManifestRejectsBadSourceType(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[parse]\nsource-type = \"commonjs\"\n")

	_, _, err := loadProjectManifest(dir)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadProjectManifestAllOptional(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")

	m, ok, err := loadProjectManifest(dir)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if m.Config.Parse.SourceType != "" || m.Config.Parse.PreserveParens != nil {
		t.Fatal("empty manifest should leave defaults unset")
	}
}
