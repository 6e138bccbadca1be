package core

import "testing"

func TestLevel_Ordering(t *testing.T) {
	// Lower value = higher priority, always.
	ordered := []Level{Off, Critical, Error, Warning, Info, Debug}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevel_Admits(t *testing.T) {
	levels := []Level{Critical, Error, Warning, Info, Debug}
	ceilings := []Level{Off, Critical, Error, Warning, Info, Debug}

	for _, c := range ceilings {
		for _, l := range levels {
			want := l <= c
			if got := c.Admits(l); got != want {
				t.Errorf("ceiling %v admits %v = %v, want %v", c, l, got, want)
			}
		}
	}

	// Off admits nothing because no statement is emitted at Off.
	for _, l := range levels {
		if Off.Admits(l) {
			t.Errorf("ceiling Off admitted %v", l)
		}
	}
}

func TestLevel_String(t *testing.T) {
	cases := map[Level]string{
		Off:       "off",
		Critical:  "critical",
		Error:     "error",
		Warning:   "warning",
		Info:      "info",
		Debug:     "debug",
		Level(99): "unknown",
	}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", l, got, want)
		}
	}
}

func TestLevel_Tag(t *testing.T) {
	cases := map[Level]string{
		Off:      "O",
		Critical: "!",
		Error:    "E",
		Warning:  "W",
		Info:     "I",
		Debug:    "D",
	}
	for l, want := range cases {
		if got := l.Tag(); got != want {
			t.Errorf("Level(%d).Tag() = %q, want %q", l, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"off":      Off,
		"CRITICAL": Critical,
		"crit":     Critical,
		"error":    Error,
		"err":      Error,
		"Warning":  Warning,
		"warn":     Warning,
		"info":     Info,
		"debug":    Debug,
		"bogus":    DefaultLevel,
		"":         DefaultLevel,
	}
	for s, want := range cases {
		if got := ParseLevel(s); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}
}
