// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := Config{Seed: 42, Budget: 30 * time.Second, Aggressive: true, Verbose: false}

	if err := Persist(path, want); err != nil {
		t.Fatalf("Persist: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestResultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.yaml")
	want := Result{Seed: 7, Status: "solved", Moves: []string{"draw", "waste->foundation"}, StatesVisited: 100}

	if err := PersistResult(path, want); err != nil {
		t.Fatalf("PersistResult: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got Result
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}

	if _, err := Load(path + ".nonexistent"); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}
