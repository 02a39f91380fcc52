package sheet

import (
	"go.uber.org/zap"

	"skin/css"
	"skin/style"
)

// cascade resolves state tables out of selector blocks.
type cascade struct {
	log    *zap.Logger
	blocks *css.Stylesheet
	ctx    *propertyContext
}

// resolve builds state table for a kind. Without base selector the table
// stays empty. Otherwise every state starts as a copy of standard state and
// is then overwritten by its own block, if there is one.
func (c *cascade) resolve(spec kindSpec) StateTable {
	base, ok := c.blocks.Block(spec.selector)
	if !ok {
		return nil
	}

	standard := style.DefaultControlStyle()
	c.apply(&standard, base)

	table := make(StateTable)
	spec.each(func(selector string, state style.PseudoState) {
		if state == style.Standard {
			table[state] = standard
			return
		}
		cs := standard.Clone()
		if b, ok := c.blocks.Block(selector); ok {
			c.apply(&cs, b)
		}
		table[state] = cs
	})

	c.log.Debug("Kind resolved",
		zap.Stringer("kind", spec.kind),
		zap.String("selector", spec.selector),
		zap.Int("states", len(table)))
	return table
}

// apply dispatches properties of the block to their handlers in declaration
// order, so "margin" followed by "margin-top" behaves as expected.
func (c *cascade) apply(cs *style.ControlStyle, b css.Block) {
	for _, name := range b.Names() {
		h, ok := propertyHandlers[name]
		if !ok {
			c.log.Debug("Unknown property ignored", zap.String("selector", b.Selector), zap.String("property", name))
			continue
		}
		v, _ := b.Property(name)
		h(c.ctx, cs, v.String())
	}
}
