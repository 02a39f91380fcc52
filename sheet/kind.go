package sheet

import (
	"strings"

	"skin/style"
)

//go:generate go tool go-enum --marshal --names --values

// ControlKind is a category of controls sharing one style table.
// ENUM(button, control, flat-button, flat-toggle-button, form, label, panel, popup-button, popup-toggle-button, status-bar, status-bar-panel, toggle-button, tool-bar, tool-bar-button, user-control)
type ControlKind int

const kindCount = ControlKindUserControl + 1

// ControlKindFromName resolves kind name, "tool-bar-button" or "tool_bar_button".
func ControlKindFromName(name string) (ControlKind, bool) {
	k, err := ParseControlKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	return k, err == nil
}

// selectorSuffix pairs a pseudo class suffix with the state it selects.
type selectorSuffix struct {
	suffix string
	state  style.PseudoState
}

// kindSpec tells the cascade where to find selectors for a control kind.
// Every state is the cross product of a variant and a state suffix.
type kindSpec struct {
	kind     ControlKind
	selector string
	variants []selectorSuffix
	states   []selectorSuffix
}

var (
	noVariants = []selectorSuffix{{"", style.Standard}}

	pushVariants = []selectorSuffix{
		{"", style.Standard},
		{":default", style.Default},
	}

	pushStates = []selectorSuffix{
		{"", style.Standard},
		{":pressed", style.Pressed},
		{":checked", style.Checked},
		{":hover", style.Hover},
		{":disabled", style.Disabled},
	}

	toggleStates = []selectorSuffix{
		{"", style.Standard},
		{":hover", style.Hover},
		{":pressed", style.Pressed},
		{":disabled", style.Disabled},
		{":checked", style.Checked},
		{":checked:hover", style.Checked | style.Hover},
		{":checked:pressed", style.Checked | style.Pressed},
		{":checked:disabled", style.Checked | style.Disabled},
		{":mixed", style.Mixed},
		{":mixed:hover", style.Mixed | style.Hover},
		{":mixed:pressed", style.Mixed | style.Pressed},
		{":mixed:disabled", style.Mixed | style.Disabled},
	}

	containerStates = []selectorSuffix{
		{"", style.Standard},
		{":hover", style.Hover},
		{":disabled", style.Disabled},
	}
)

// kindSpecs drives the cascade. Status bar panels are read from the
// tool-bar-button selectors.
var kindSpecs = []kindSpec{
	{ControlKindButton, "button", pushVariants, pushStates},
	{ControlKindControl, "control", noVariants, containerStates},
	{ControlKindFlatButton, "flat-button", pushVariants, pushStates},
	{ControlKindFlatToggleButton, "flat-toggle-button", noVariants, toggleStates},
	{ControlKindForm, "form", noVariants, containerStates},
	{ControlKindLabel, "label", noVariants, containerStates},
	{ControlKindPanel, "panel", noVariants, containerStates},
	{ControlKindPopupButton, "popup-button", pushVariants, pushStates},
	{ControlKindPopupToggleButton, "popup-toggle-button", noVariants, toggleStates},
	{ControlKindStatusBar, "status-bar", noVariants, containerStates},
	{ControlKindStatusBarPanel, "tool-bar-button", noVariants, pushStates},
	{ControlKindToggleButton, "toggle-button", noVariants, toggleStates},
	{ControlKindToolBar, "tool-bar", noVariants, containerStates},
	{ControlKindToolBarButton, "tool-bar-button", noVariants, pushStates},
	{ControlKindUserControl, "user-control", noVariants, containerStates},
}

// each calls fn for every (selector, state) combination of the kind, base
// selector first.
func (ks kindSpec) each(fn func(selector string, state style.PseudoState)) {
	for _, v := range ks.variants {
		for _, s := range ks.states {
			fn(ks.selector+v.suffix+s.suffix, v.state|s.state)
		}
	}
}
