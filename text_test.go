package sandhisplit

import "testing"

func TestParseScheme(t *testing.T) {
	cases := []struct {
		name string
		want Scheme
		ok   bool
	}{
		{"slp1", SLP1, true},
		{"SLP1", SLP1, true},
		{"devanagari", Devanagari, true},
		{"iast", IAST, true},
		{"hk", HK, true},
		{"klingon", SchemeUnknown, false},
	}
	for _, c := range cases {
		got, err := ParseScheme(c.name)
		if c.ok && err != nil {
			t.Errorf("ParseScheme(%q): unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseScheme(%q): expected error, got nil", c.name)
		}
		if got != c.want {
			t.Errorf("ParseScheme(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		s    string
		want Scheme
	}{
		{"rAmaH", SLP1},
		{"rāmaḥ", IAST},
		{"rAmaH", SLP1},
		{"rāma", IAST},
		{"khaga", HK},
		{"रामः", Devanagari},
	}
	for _, c := range cases {
		got := detectScheme(c.s)
		if got != c.want {
			t.Errorf("detectScheme(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestSanskritTextSLP1(t *testing.T) {
	t1 := NewText("rAmaH", SLP1)
	if got := t1.SLP1(); got != "rAmaH" {
		t.Errorf("SLP1() = %q, want %q", got, "rAmaH")
	}

	t2 := NewText("rāmaḥ", IAST)
	if got := t2.SLP1(); got != "rAmaH" {
		t.Errorf("IAST SLP1() = %q, want %q", got, "rAmaH")
	}

	t3 := NewText("khaga", HK)
	if got := t3.SLP1(); got != "Kaga" {
		t.Errorf("HK SLP1() = %q, want %q", got, "Kaga")
	}
}

func TestDevanagariToSLP1(t *testing.T) {
	cases := []struct{ in, want string }{
		{"रामः", "rAmaH"},
		{"देव", "deva"},
	}
	for _, c := range cases {
		got := devanagariToSLP1(c.in)
		if got != c.want {
			t.Errorf("devanagariToSLP1(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewTextAutoDetect(t *testing.T) {
	text := NewText("rAmaH", SchemeUnknown)
	if text.Scheme() != SLP1 {
		t.Errorf("auto-detected scheme = %v, want SLP1", text.Scheme())
	}
}
