package style

import (
	"reflect"
	"testing"
)

func TestBackgroundImageFromCSS(t *testing.T) {
	const red, blue Color = 0xffff0000, 0xff0000ff
	def := BackgroundImage{Kind: ImageKindUrl, URL: "default.png"}

	tests := []struct {
		name     string
		input    string
		expected BackgroundImage
	}{
		{"none", "none", BackgroundImage{}},
		{"url", "url(images/bg.png)", BackgroundImage{Kind: ImageKindUrl, URL: "images/bg.png"}},
		{"quoted url", `url("images/bg.png")`, BackgroundImage{Kind: ImageKindUrl, URL: "images/bg.png"}},
		{"angle", "linear-gradient(45deg, red, blue)", BackgroundImage{Kind: ImageKindLinearGradient, Angle: 45, Stops: []Color{red, blue}}},
		{"default angle", "linear-gradient(red, blue)", BackgroundImage{Kind: ImageKindLinearGradient, Angle: 180, Stops: []Color{red, blue}}},
		{"direction", "linear-gradient(to  top right, red, rgb(0, 0, 255))", BackgroundImage{Kind: ImageKindLinearGradient, Angle: 45, Stops: []Color{red, blue}}},
		{"direction left", "linear-gradient(to left, red, blue, red)", BackgroundImage{Kind: ImageKindLinearGradient, Angle: 270, Stops: []Color{red, blue, red}}},
		{"one stop", "linear-gradient(red)", def},
		{"two angle sources", "linear-gradient(to top, 45deg, red, blue)", def},
		{"bad stop", "linear-gradient(red, nope)", def},
		{"unknown", "radial-gradient(red, blue)", def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BackgroundImageFromCSS(tt.input, def, nil)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("BackgroundImageFromCSS(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBackgroundImageClone(t *testing.T) {
	bi := BackgroundImage{Kind: ImageKindLinearGradient, Angle: 90, Stops: []Color{1, 2}}
	c := bi.Clone()
	c.Stops[0] = 5
	if bi.Stops[0] != 1 {
		t.Error("Clone shares stops with original")
	}
}
