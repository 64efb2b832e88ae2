/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for nol.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bennypowers.dev/nol/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// FixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func FixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()

	fixturePath := resolveTestdata(fixtureDir)
	if fixturePath == "" {
		t.Fatalf("could not find fixtures at %s", fixtureDir)
	}

	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// Golden compares actual output against the golden file at goldenPath,
// rewriting the golden file instead when the -update flag is set. Line
// endings are normalized before comparison.
func Golden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	if *updateGolden {
		writeGolden(t, goldenPath, actual)
		return
	}

	path := resolveTestdata(goldenPath)
	if path == "" {
		t.Fatalf("failed to read golden file %s; run with -update to create it", goldenPath)
	}
	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", goldenPath, err)
	}

	gotStr := strings.ReplaceAll(string(actual), "\r\n", "\n")
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")

	if gotStr != expectedStr {
		t.Errorf("output mismatch for %q.\n\nGot:\n%s\n\nExpected:\n%s", goldenPath, gotStr, expectedStr)
	}
}

// writeGolden writes actual output to the golden file.
func writeGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	targetPath := resolveTestdata(goldenPath)
	if targetPath == "" {
		targetPath = filepath.Join("testdata", goldenPath)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("failed to write golden file %s: %v", goldenPath, err)
	}

	t.Logf("updated golden file: %s", targetPath)
}

// resolveTestdata finds a path under testdata, probing parent
// directories since go test runs each package in its own directory.
func resolveTestdata(rel string) string {
	possiblePaths := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
