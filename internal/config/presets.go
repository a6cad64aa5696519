package config

// Presets are built-in worksheets, usable without a config file.
var Presets = map[string]*Config{
	"shear": {
		Name: "shear",
		Variables: []VariableConfig{
			{Shorthand: "a=200mm", Info: "section depth"},
			{Shorthand: "b=0.01cm", Info: "wall thickness"},
			{Shorthand: "fy=200MPa", Info: "yield stress"},
		},
	},
	"frame": {
		Name: "frame",
		Variables: []VariableConfig{
			{Shorthand: "L=6m", Info: "span"},
			{Shorthand: "F=12kN", Info: "point load"},
			{Shorthand: "W=1200cm3", Info: "section modulus"},
		},
	},
	"mixed": {
		Name: "mixed",
		Variables: []VariableConfig{
			{Name: "m", Value: ptr(80), Unit: ptrStr("kg")},
			{Name: "t", Value: ptr(3), Unit: ptrStr("s")},
			{Name: "impulse", Value: ptr(240), Unit: ptrStr("kg s"),
				Dimension: []float64{0, 1, 1, 0, 0, 0, 0}, Formula: "m*t"},
		},
	},
}

func ptr(v float64) *float64  { return &v }
func ptrStr(s string) *string { return &s }

// GetPreset returns a copy of the named preset, so callers can edit the
// worksheet without touching the shared table. Unknown names return nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Variables = append([]VariableConfig(nil), cfg.Variables...)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
