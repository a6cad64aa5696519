package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AdrienGallet/unitcalc/internal/quantity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "worksheet" {
		t.Errorf("expected name worksheet, got %s", cfg.Name)
	}
	if cfg.DataDir == "" {
		t.Error("data dir should have a default")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")

	cfg := DefaultConfig()
	cfg.Name = "test"
	cfg.Variables = []VariableConfig{
		{Shorthand: "a=200mm"},
		{Name: "f", Value: ptr(10), Unit: ptrStr("kN"), Info: "load"},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Name != "test" || len(loaded.Variables) != 2 {
		t.Errorf("round trip lost data: %+v", loaded)
	}
	if loaded.Variables[1].Info != "load" {
		t.Errorf("variable metadata lost: %+v", loaded.Variables[1])
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	doc := `name: beams
variables:
  - shorthand: L=6m
  - name: F
    value: 12
    unit: kN
  - name: x
    value: 5
    unit: kg s
    dimension: [0, 1, 1, 0, 0, 0, 0]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	quantities, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(quantities) != 3 {
		t.Fatalf("expected 3 quantities, got %d", len(quantities))
	}
	if quantities[0].Family() != "length" || quantities[0].Value() != 6 {
		t.Errorf("L built wrong: %s", quantities[0].Describe())
	}
	if quantities[1].BaseValue() != 12000 {
		t.Errorf("F base = %v, want 12000", quantities[1].BaseValue())
	}
	if !quantities[2].Synthesized() {
		t.Errorf("x should be synthesized: %s", quantities[2].Describe())
	}
}

func TestBuild_Errors(t *testing.T) {
	cfg := &Config{Variables: []VariableConfig{
		{Name: "a", Value: ptr(1)},
	}}
	if _, err := cfg.Build(); !errors.Is(err, quantity.ErrAmbiguousConstruction) {
		t.Errorf("expected ErrAmbiguousConstruction, got %v", err)
	}

	cfg = &Config{Variables: []VariableConfig{
		{Name: "x", Value: ptr(1), Unit: ptrStr("kg s"), Dimension: []float64{1, 2}},
	}}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for short dimension vector")
	}

	cfg = &Config{Variables: []VariableConfig{
		{Name: "x", Value: ptr(1), Unit: ptrStr("kg s")},
	}}
	if _, err := cfg.Build(); !errors.Is(err, quantity.ErrMissingDimension) {
		t.Errorf("expected ErrMissingDimension, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) == 0 {
		t.Error("expected built-in presets")
	}

	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %q missing", name)
		}
		if _, err := cfg.Build(); err != nil {
			t.Errorf("preset %q does not build: %v", name, err)
		}
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	cfg := GetPreset("shear")
	want := len(cfg.Variables)

	cfg.Name = "scratch"
	cfg.Variables = append(cfg.Variables, VariableConfig{Shorthand: "x=1m"})
	cfg.Variables[0].Info = "clobbered"

	fresh := GetPreset("shear")
	if fresh.Name != "shear" {
		t.Errorf("preset name changed to %q", fresh.Name)
	}
	if len(fresh.Variables) != want {
		t.Errorf("preset grew to %d variables, want %d", len(fresh.Variables), want)
	}
	if fresh.Variables[0].Info == "clobbered" {
		t.Error("mutating a returned preset leaked into the shared table")
	}
}
