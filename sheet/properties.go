package sheet

import (
	"maps"
	"slices"

	"skin/style"
)

// propertyContext carries what value parsers need beyond the text itself.
type propertyContext struct {
	palette                *style.SystemColors
	positionalBorderColors bool
}

type propertyHandler func(ctx *propertyContext, cs *style.ControlStyle, value string)

var sides = []style.Side{style.SideTop, style.SideRight, style.SideBottom, style.SideLeft}

// radius corners map onto sides in shorthand order.
var corners = map[string]style.Side{
	"top-left":     style.SideTop,
	"top-right":    style.SideRight,
	"bottom-right": style.SideBottom,
	"bottom-left":  style.SideLeft,
}

// propertyHandlers maps property name to the code applying its value.
var propertyHandlers = buildPropertyHandlers()

func buildPropertyHandlers() map[string]propertyHandler {
	h := map[string]propertyHandler{
		"margin": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Margin = style.ExpandShorthand(v, cs.Margin, style.LengthFromCSS)
		},
		"padding": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Padding = style.ExpandShorthand(v, cs.Padding, style.LengthFromCSS)
		},
		"height": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Height = style.LengthFromCSS(v, cs.Height)
		},
		"width": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Width = style.LengthFromCSS(v, cs.Width)
		},
		"background-color": func(ctx *propertyContext, cs *style.ControlStyle, v string) {
			cs.BackgroundColor = style.ColorFromCSS(v, cs.BackgroundColor, ctx.palette)
		},
		"background-image": func(ctx *propertyContext, cs *style.ControlStyle, v string) {
			cs.BackgroundImage = style.BackgroundImageFromCSS(v, cs.BackgroundImage, ctx.palette)
		},
		"background": func(ctx *propertyContext, cs *style.ControlStyle, v string) {
			if c, ok := style.ParseColor(v, ctx.palette); ok {
				cs.BackgroundColor = c
				return
			}
			cs.BackgroundImage = style.BackgroundImageFromCSS(v, cs.BackgroundImage, ctx.palette)
		},
		"color": func(ctx *propertyContext, cs *style.ControlStyle, v string) {
			cs.Color = style.ColorFromCSS(v, cs.Color, ctx.palette)
		},
		"text-align": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.TextAlign = style.ContentAlignmentFromCSS(v, cs.TextAlign)
		},
		"image-align": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.ImageAlign = style.ContentAlignmentFromCSS(v, cs.ImageAlign)
		},
		"text-decoration": func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.TextDecoration = style.TextDecorationFromCSS(v, cs.TextDecoration)
		},
	}
	transform := func(_ *propertyContext, cs *style.ControlStyle, v string) {
		cs.TextTransformation = style.TextTransformationFromCSS(v, cs.TextTransformation)
	}
	h["text-transform"] = transform
	h["text-transformation"] = transform

	for _, side := range sides {
		h["margin-"+side.String()] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Margin.Set(side, style.LengthFromCSS(v, cs.Margin.Get(side)))
		}
		h["padding-"+side.String()] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
			cs.Padding.Set(side, style.LengthFromCSS(v, cs.Padding.Get(side)))
		}
	}

	addBorderHandlers(h, "border", func(cs *style.ControlStyle) *style.Border { return &cs.Border })
	addBorderHandlers(h, "outline", func(cs *style.ControlStyle) *style.Border { return &cs.Outline })
	return h
}

// addBorderHandlers registers shorthand, per side and per corner properties of
// a border like box edge.
func addBorderHandlers(h map[string]propertyHandler, prefix string, border func(*style.ControlStyle) *style.Border) {
	h[prefix+"-style"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
		b := border(cs)
		b.Style = style.ExpandShorthand(v, b.Style, style.BorderStyleFromCSS)
	}
	h[prefix+"-color"] = func(ctx *propertyContext, cs *style.ControlStyle, v string) {
		b := border(cs)
		b.Color = style.ExpandBorderColors(v, b.Color, ctx.palette, ctx.positionalBorderColors)
	}
	h[prefix+"-width"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
		b := border(cs)
		b.Width = style.ExpandShorthand(v, b.Width, style.LengthFromCSS)
	}
	h[prefix+"-radius"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
		b := border(cs)
		b.Radius = style.ExpandShorthand(v, b.Radius, style.LengthFromCSS)
	}

	for _, side := range sides {
		name := prefix + "-" + side.String()
		h[name+"-style"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
			b := border(cs)
			b.Style.Set(side, style.BorderStyleFromCSS(v, b.Style.Get(side)))
		}
		h[name+"-color"] = func(ctx *propertyContext, cs *style.ControlStyle, v string) {
			b := border(cs)
			b.Color.Set(side, style.ColorFromCSS(v, b.Color.Get(side), ctx.palette))
		}
		h[name+"-width"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
			b := border(cs)
			b.Width.Set(side, style.LengthFromCSS(v, b.Width.Get(side)))
		}
	}
	for corner, side := range corners {
		h[prefix+"-"+corner+"-radius"] = func(_ *propertyContext, cs *style.ControlStyle, v string) {
			b := border(cs)
			b.Radius.Set(side, style.LengthFromCSS(v, b.Radius.Get(side)))
		}
	}
}

// PropertyNames returns sorted names of every property the cascade understands.
func PropertyNames() []string {
	return slices.Sorted(maps.Keys(propertyHandlers))
}
