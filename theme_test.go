package rotkin

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "theme.yaml", "label_size: 14\nminor_ticks: false\nformat: png\n")
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if theme.LabelSize != 14 || theme.MinorTicks || theme.Format != "png" {
		t.Errorf("Settings not applied: %+v", theme)
	}
	if theme.LegendSize != DefaultTheme.LegendSize || theme.FontVariant != "Serif" {
		t.Errorf("Defaults lost: %+v", theme)
	}

	bad := writeTemp(t, dir, "bad.yaml", "width: 0\n")
	if _, err := LoadTheme(bad); err == nil {
		t.Errorf("Missing error for zero width")
	}
	broken := writeTemp(t, dir, "broken.yaml", "label_size: [\n")
	if _, err := LoadTheme(broken); err == nil {
		t.Errorf("Missing error for broken YAML")
	}
	for _, setting := range []string{"legend_frame: true\n", "minor_tick_length: 3\n"} {
		unknown := writeTemp(t, dir, "unknown.yaml", setting)
		if _, err := LoadTheme(unknown); err == nil {
			t.Errorf("Missing error for unsupported setting %q", setting)
		}
	}
	empty := writeTemp(t, dir, "empty.yaml", "")
	if theme, err := LoadTheme(empty); err != nil || theme != DefaultTheme {
		t.Errorf("Empty theme: got %+v, %v", theme, err)
	}
	if _, err := LoadTheme(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Errorf("Missing error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{0xff, 0, 0, 0xff}},
		{"MediumSlateBlue", color.NRGBA{0x7b, 0x68, 0xee, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{" #10203080 ", color.NRGBA{0x10, 0x20, 0x30, 0x80}},
	} {
		c, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tc.in, err)
			continue
		}
		if got := color.NRGBAModel.Convert(c).(color.NRGBA); got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"", "nocolor", "#12", "#gg0000"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
	if String2Color("nocolor") == nil {
		t.Errorf("No fallback color")
	}
}

func TestPaletteAndAlpha(t *testing.T) {
	p, err := Palette([]string{"red", "#00ff00"})
	if err != nil || len(p) != 2 {
		t.Fatalf("Got %v, %v", p, err)
	}
	if _, err := Palette([]string{"red", "nocolor"}); err == nil {
		t.Errorf("Missing error for unknown color")
	}
	c := SetAlpha(BuiltinColors["blue"], 0.5).(color.NRGBA)
	if c.B != 0xff || c.A != 0x7f {
		t.Errorf("Got %v", c)
	}
	if c := SetAlpha(BuiltinColors["blue"], 2).(color.NRGBA); c.A != 0xff {
		t.Errorf("Alpha not clamped: %v", c)
	}
}
