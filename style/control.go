package style

// ControlStyle is fully resolved presentation of a control in one pseudo
// state. Every control kind uses the same record.
type ControlStyle struct {
	Margin             Sided[Length]      `yaml:"margin"`
	Border             Border             `yaml:"border"`
	Outline            Border             `yaml:"outline"`
	Padding            Sided[Length]      `yaml:"padding"`
	Height             Length             `yaml:"height"`
	Width              Length             `yaml:"width"`
	BackgroundColor    Color              `yaml:"background-color"`
	BackgroundImage    BackgroundImage    `yaml:"background-image"`
	Color              Color              `yaml:"color"`
	TextAlign          ContentAlignment   `yaml:"text-align"`
	TextDecoration     TextDecoration     `yaml:"text-decoration"`
	TextTransformation TextTransformation `yaml:"text-transformation"`
	ImageAlign         ContentAlignment   `yaml:"image-align"`
}

// DefaultControlStyle returns record describing a control nobody styled.
func DefaultControlStyle() ControlStyle {
	return ControlStyle{
		Margin:          AllSides(Pixels(0)),
		Border:          DefaultBorder(),
		Outline:         DefaultBorder(),
		Padding:         AllSides(Pixels(0)),
		Height:          Auto,
		Width:           Auto,
		BackgroundColor: Transparent,
		Color:           Transparent,
		TextAlign:       ContentAlignmentMiddleCenter,
		ImageAlign:      ContentAlignmentMiddleCenter,
	}
}

// Clone returns deep copy of the record.
func (cs ControlStyle) Clone() ControlStyle {
	cs.BackgroundImage = cs.BackgroundImage.Clone()
	return cs
}
