package style

import "testing"

// The hex-length dispatch table in parseColor is total over the documented
// lengths and returns Invalid - never panics - on anything else.
func TestParseColor_HexLengthDispatchIsTotal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want RGBA
	}{
		{"2-digit gray", "#aa", RGBA{0xaa, 0xaa, 0xaa, 0xff}},
		{"3-digit rgb", "#f0a", RGBA{0xff, 0x00, 0xaa, 0xff}},
		{"4-digit rgba", "#f0a8", RGBA{0xff, 0x00, 0xaa, 0x88}},
		{"6-digit rrggbb", "#112233", RGBA{0x11, 0x22, 0x33, 0xff}},
		{"8-digit rrggbbaa", "#11223344", RGBA{0x11, 0x22, 0x33, 0x44}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := ColorSpec().Parse(c.raw)
			if v.Kind != KindColor {
				t.Fatalf("Parse(%q) = %v, want KindColor", c.raw, v)
			}
			if v.Color != c.want {
				t.Errorf("Parse(%q) = %+v, want %+v", c.raw, v.Color, c.want)
			}
		})
	}

	invalid := []string{"", "nohash", "#1", "#12345", "#1234567", "#zz", "#"}
	for _, raw := range invalid {
		v := ColorSpec().Parse(raw)
		if raw == "" {
			if v.Kind != KindEmpty {
				t.Errorf("Parse(%q) = %v, want KindEmpty", raw, v)
			}
			continue
		}
		if v.Kind != KindInvalid {
			t.Errorf("Parse(%q) = %v, want KindInvalid (no length in the dispatch table should panic)", raw, v)
		}
	}
}

func TestParseNumber_UnitDefaultingAndNegativeRejection(t *testing.T) {
	t.Run("bare number defaults to px", func(t *testing.T) {
		v := NumberSpec().Parse("12")
		d, ok := v.Dim()
		if !ok {
			t.Fatalf("Parse(12) = %+v, want a dimension-bearing value", v)
		}
		if d.Kind != DimPx || d.Value != 12 {
			t.Errorf("got %+v, want Px(12)", d)
		}
	})

	t.Run("negative rejected by PositiveNumber", func(t *testing.T) {
		v := PositiveNumberSpec().Parse("-5")
		if v.Kind != KindInvalid {
			t.Fatalf("Parse(-5) on PositiveNumberSpec = %+v, want KindInvalid", v)
		}
	})

	t.Run("negative accepted by Number", func(t *testing.T) {
		v := NumberSpec().Parse("-5")
		if v.Kind != KindNegativeNumber {
			t.Fatalf("Parse(-5) on NumberSpec = %+v, want KindNegativeNumber", v)
		}
	})

	t.Run("negative percent rejected even by Number", func(t *testing.T) {
		v := NumberSpec().Parse("-5%")
		if v.Kind != KindInvalid {
			t.Fatalf("Parse(-5%%) = %+v, want KindInvalid (percent has no negative form)", v)
		}
	})

	t.Run("unit suffix is case-insensitive", func(t *testing.T) {
		v := NumberSpec().Parse("2EM")
		d, ok := v.Dim()
		if !ok || d.Kind != DimEm {
			t.Fatalf("Parse(2EM) = %+v, want Em(2)", v)
		}
	})

	t.Run("malformed unit is invalid", func(t *testing.T) {
		v := NumberSpec().Parse("5quatloos")
		if v.Kind != KindInvalid {
			t.Fatalf("Parse(5quatloos) = %+v, want KindInvalid", v)
		}
	})

	t.Run("empty is empty", func(t *testing.T) {
		v := NumberSpec().Parse("")
		if v.Kind != KindEmpty {
			t.Fatalf("Parse(\"\") = %+v, want KindEmpty", v)
		}
	})
}

func TestParseMatch_CaseInsensitiveLookup(t *testing.T) {
	set := []string{"left", "right", "center"}

	v := MatchSpec(set).Parse("CENTER")
	if v.Kind != KindMatch || v.MatchIndex != 2 || v.MatchLabel != "center" {
		t.Fatalf("Parse(CENTER) = %+v, want Match(2, center)", v)
	}

	v = MatchSpec(set).Parse("nonsense")
	if v.Kind != KindInvalid {
		t.Fatalf("Parse(nonsense) = %+v, want KindInvalid", v)
	}
}

func TestParseMatchOrFloat_FallsBackToFloat(t *testing.T) {
	set := []string{"auto", "content"}

	v := MatchOrFloatSpec(set).Parse("auto")
	if v.Kind != KindMatch {
		t.Fatalf("Parse(auto) = %+v, want KindMatch", v)
	}

	v = MatchOrFloatSpec(set).Parse("42")
	if v.Kind != KindFloat || v.Float != 42 {
		t.Fatalf("Parse(42) = %+v, want Float(42)", v)
	}

	v = MatchOrFloatSpec(set).Parse("not a number")
	if v.Kind != KindInvalid {
		t.Fatalf("Parse(not a number) = %+v, want KindInvalid", v)
	}
}

func TestParsePath_NoneIsUnset(t *testing.T) {
	v := PathSpec(PathKindImage).Parse("none")
	if v.Kind != KindUnset {
		t.Fatalf("Parse(none) = %+v, want KindUnset", v)
	}

	v = PathSpec(PathKindImage).Parse("cover.png")
	if v.Kind != KindImagePath || v.PathBuf != "cover.png" {
		t.Fatalf("Parse(cover.png) = %+v, want ImagePath(cover.png)", v)
	}
}

func TestParseIdent_TrimsAndWrapsAsMatch(t *testing.T) {
	v := IdentSpec().Parse("  Times New Roman  ")
	if v.Kind != KindMatch || v.MatchLabel != "Times New Roman" {
		t.Fatalf("Parse = %+v, want Match(0, \"Times New Roman\")", v)
	}
}

func TestDimension_ToPixels_ZeroValuedVariantsResolveToZero(t *testing.T) {
	for _, d := range []Dimension{Auto(), Content(), Zero()} {
		if px := d.ToPixels(100, 16, 16, 160); px != 0 {
			t.Errorf("%+v.ToPixels(...) = %v, want 0", d, px)
		}
	}
}

func TestDimension_ToPixels_RelativeUnits(t *testing.T) {
	if px := Percent(50).ToPixels(200, 0, 0, 160); px != 100 {
		t.Errorf("Percent(50) of 200 = %v, want 100", px)
	}
	if px := Em(2).ToPixels(0, 0, 10, 160); px != 20 {
		t.Errorf("Em(2) at emPx=10 = %v, want 20", px)
	}
	if px := Rem(2).ToPixels(0, 16, 0, 160); px != 32 {
		t.Errorf("Rem(2) at remPx=16 = %v, want 32", px)
	}
	if px := Inch(1).ToPixels(0, 0, 0, 160); px != 160 {
		t.Errorf("Inch(1) at 160dpi = %v, want 160", px)
	}
}

func TestDimension_ToPixels_NeverNegative(t *testing.T) {
	if px := Px(-10).ToPixels(0, 0, 0, 160); px != 0 {
		t.Errorf("Px(-10).ToPixels = %v, want 0 (clamped)", px)
	}
}
