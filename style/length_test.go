package style

import "testing"

func TestLengthFromCSS(t *testing.T) {
	def := Length{Value: 42, Unit: UnitPoints}

	tests := []struct {
		input    string
		expected Length
	}{
		{"10px", Length{10, UnitPixels}},
		{"1.5EM", Length{1.5, UnitElement}},
		{"2rem", Length{2, UnitRootElement}},
		{"3vmin", Length{3, UnitViewportMin}},
		{"3vmax", Length{3, UnitViewportMax}},
		{"4in", Length{4, UnitInches}},
		{"5cm", Length{5, UnitCentimeters}},
		{"6mm", Length{6, UnitMillimeters}},
		{"7pt", Length{7, UnitPoints}},
		{"8pc", Length{8, UnitPicas}},
		{"9ex", Length{9, UnitElementXHeight}},
		{"10ch", Length{10, UnitChase}},
		{"11vw", Length{11, UnitViewportWidth}},
		{"12vh", Length{12, UnitViewportHeight}},
		{"50%", Length{50, UnitPercent}},
		{"-2px", Length{-2, UnitPixels}},
		{"0", Pixels(0)},
		{"auto", Auto},
		{"Initial", Auto},
		{"inherit", Auto},
		{"10", def},
		{"px", def},
		{"abc", def},
		{"", def},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := LengthFromCSS(tt.input, def)
			if got != tt.expected {
				t.Errorf("LengthFromCSS(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLengthString(t *testing.T) {
	if s := Pixels(1.5).String(); s != "1.5px" {
		t.Errorf("String() = %q, want %q", s, "1.5px")
	}
	if s := Auto.String(); s != "auto" {
		t.Errorf("String() = %q, want %q", s, "auto")
	}
	if !LengthFromCSS("auto", Pixels(0)).IsAuto() {
		t.Error("auto should be Auto")
	}
}
