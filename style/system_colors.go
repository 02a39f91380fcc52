package style

import "strings"

//go:generate go tool go-enum --marshal --names --values

// SystemColor identifies a single entry of the system color palette.
// ENUM(
// accent,
// accent-text,
// active-border,
// active-caption,
// active-caption-text,
// app-workspace,
// button-face,
// button-highlight,
// button-shadow,
// control,
// control-dark,
// control-dark-dark,
// control-light,
// control-light-light,
// control-text,
// desktop,
// gradient-active-caption,
// gradient-inactive-caption,
// gray-text,
// highlight,
// highlight-text,
// hot-track,
// inactive-border,
// inactive-caption,
// inactive-caption-text,
// info,
// info-text,
// menu,
// menu-bar,
// menu-highlight,
// menu-text,
// scroll-bar,
// text-box,
// text-box-text,
// window,
// window-frame,
// window-text,
// )
type SystemColor int

const systemColorCount = SystemColorWindowText + 1

// SystemColorFromName resolves palette entry name. Both kebab-case and
// snake_case spellings are accepted.
func SystemColorFromName(name string) (SystemColor, bool) {
	c, err := ParseSystemColor(strings.ReplaceAll(keyword(name), "_", "-"))
	return c, err == nil
}

// SystemColors is the palette of OS themed colors a style sheet may reference
// with system-color(name). It is a plain array, so assignment copies it.
type SystemColors [systemColorCount]Color

// Get returns palette entry.
func (p SystemColors) Get(c SystemColor) Color {
	if c < 0 || c >= systemColorCount {
		return 0
	}
	return p[c]
}

// Set changes palette entry.
func (p *SystemColors) Set(c SystemColor, v Color) {
	if c < 0 || c >= systemColorCount {
		return
	}
	p[c] = v
}

// Lookup returns palette entry by name.
func (p SystemColors) Lookup(name string) (Color, bool) {
	c, ok := SystemColorFromName(name)
	if !ok {
		return 0, false
	}
	return p[c], true
}

func (p SystemColors) Control() Color     { return p[SystemColorControl] }
func (p SystemColors) ControlText() Color { return p[SystemColorControlText] }
func (p SystemColors) Window() Color      { return p[SystemColorWindow] }
func (p SystemColors) WindowText() Color  { return p[SystemColorWindowText] }

// Map returns palette as name -> color mapping.
func (p SystemColors) Map() map[string]Color {
	m := make(map[string]Color, systemColorCount)
	for _, c := range SystemColorValues() {
		m[c.String()] = p[c]
	}
	return m
}

// DefaultSystemColors returns built-in palette used when nothing better is
// known about the platform.
func DefaultSystemColors(dark bool) SystemColors {
	if dark {
		return darkSystemColors
	}
	return lightSystemColors
}

var lightSystemColors = SystemColors{
	SystemColorAccent:                  0xff0078d7,
	SystemColorAccentText:              0xffffffff,
	SystemColorActiveBorder:            0xffb4b4b4,
	SystemColorActiveCaption:           0xff99b4d1,
	SystemColorActiveCaptionText:       0xff000000,
	SystemColorAppWorkspace:            0xffababab,
	SystemColorButtonFace:              0xfff0f0f0,
	SystemColorButtonHighlight:         0xffffffff,
	SystemColorButtonShadow:            0xffa0a0a0,
	SystemColorControl:                 0xfff0f0f0,
	SystemColorControlDark:             0xffa0a0a0,
	SystemColorControlDarkDark:         0xff696969,
	SystemColorControlLight:            0xffe3e3e3,
	SystemColorControlLightLight:       0xffffffff,
	SystemColorControlText:             0xff000000,
	SystemColorDesktop:                 0xff000000,
	SystemColorGradientActiveCaption:   0xffb9d1ea,
	SystemColorGradientInactiveCaption: 0xffd7e4f2,
	SystemColorGrayText:                0xff6d6d6d,
	SystemColorHighlight:               0xff0078d7,
	SystemColorHighlightText:           0xffffffff,
	SystemColorHotTrack:                0xff0066cc,
	SystemColorInactiveBorder:          0xfff4f7fc,
	SystemColorInactiveCaption:         0xffbfcddb,
	SystemColorInactiveCaptionText:     0xff000000,
	SystemColorInfo:                    0xffffffe1,
	SystemColorInfoText:                0xff000000,
	SystemColorMenu:                    0xfff0f0f0,
	SystemColorMenuBar:                 0xfff0f0f0,
	SystemColorMenuHighlight:           0xff3399ff,
	SystemColorMenuText:                0xff000000,
	SystemColorScrollBar:               0xffc8c8c8,
	SystemColorTextBox:                 0xffffffff,
	SystemColorTextBoxText:             0xff000000,
	SystemColorWindow:                  0xffffffff,
	SystemColorWindowFrame:             0xff646464,
	SystemColorWindowText:              0xff000000,
}

var darkSystemColors = SystemColors{
	SystemColorAccent:                  0xff0a84ff,
	SystemColorAccentText:              0xffffffff,
	SystemColorActiveBorder:            0xff464646,
	SystemColorActiveCaption:           0xff1f1f1f,
	SystemColorActiveCaptionText:       0xffffffff,
	SystemColorAppWorkspace:            0xff3c3c3c,
	SystemColorButtonFace:              0xff3c3c3c,
	SystemColorButtonHighlight:         0xff505050,
	SystemColorButtonShadow:            0xff1e1e1e,
	SystemColorControl:                 0xff202020,
	SystemColorControlDark:             0xff141414,
	SystemColorControlDarkDark:         0xff000000,
	SystemColorControlLight:            0xff3c3c3c,
	SystemColorControlLightLight:       0xff505050,
	SystemColorControlText:             0xffffffff,
	SystemColorDesktop:                 0xff000000,
	SystemColorGradientActiveCaption:   0xff2b2b2b,
	SystemColorGradientInactiveCaption: 0xff2b2b2b,
	SystemColorGrayText:                0xff8c8c8c,
	SystemColorHighlight:               0xff0a84ff,
	SystemColorHighlightText:           0xffffffff,
	SystemColorHotTrack:                0xff4da3ff,
	SystemColorInactiveBorder:          0xff2b2b2b,
	SystemColorInactiveCaption:         0xff2b2b2b,
	SystemColorInactiveCaptionText:     0xffa0a0a0,
	SystemColorInfo:                    0xff3c3c3c,
	SystemColorInfoText:                0xffffffff,
	SystemColorMenu:                    0xff2b2b2b,
	SystemColorMenuBar:                 0xff2b2b2b,
	SystemColorMenuHighlight:           0xff0a84ff,
	SystemColorMenuText:                0xffffffff,
	SystemColorScrollBar:               0xff4a4a4a,
	SystemColorTextBox:                 0xff1e1e1e,
	SystemColorTextBoxText:             0xffffffff,
	SystemColorWindow:                  0xff1e1e1e,
	SystemColorWindowFrame:             0xff646464,
	SystemColorWindowText:              0xffffffff,
}
