package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != defaultThemeName {
		t.Fatalf("ThemeNames() = %v, want 3 names starting with %s", names, defaultThemeName)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	name := defaultThemeName
	seen := map[string]bool{}
	for range ThemeNames() {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != defaultThemeName || len(seen) != len(ThemeNames()) {
		t.Fatalf("cycle ended at %q after visiting %v", name, seen)
	}
	if got := NextTheme("Unknown"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(Unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got)
	}
	if got := GetTheme("Unknown").Name; got != defaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %q", got, defaultThemeName)
	}
}

func TestBuiltinThemes_FillEveryColour(t *testing.T) {
	for _, th := range builtinThemes {
		colours := map[string]string{
			"Background":    th.Background,
			"Surface":       th.Surface,
			"SurfaceAlt":    th.SurfaceAlt,
			"SelectionBg":   th.SelectionBg,
			"SelectionText": th.SelectionText,
			"Text":          th.Text,
			"Muted":         th.Muted,
			"Faint":         th.Faint,
			"Accent":        th.Accent,
			"Success":       th.Success,
			"Warning":       th.Warning,
			"Danger":        th.Danger,
		}
		for field, value := range colours {
			if len(value) != 7 || value[0] != '#' {
				t.Fatalf("%s.%s = %q, want #rrggbb", th.Name, field, value)
			}
		}
	}
}
