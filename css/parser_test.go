package css_test

import (
	"testing"

	"go.uber.org/zap"

	"skin/css"
)

func TestParser_SimpleSelector(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`button { margin: 5px; color: red; }`))

	b, ok := sheet.Block("button")
	if !ok {
		t.Fatal("expected 'button' selector block")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 properties, got %d", b.Len())
	}
	if v, _ := b.Property("margin"); v.String() != "5px" {
		t.Errorf("margin = %q, want %q", v.String(), "5px")
	}
	if v, _ := b.Property("color"); v.String() != "red" {
		t.Errorf("color = %q, want %q", v.String(), "red")
	}
}

func TestParser_PseudoClassSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	input := []byte(`
button { color: black; }
button:hover { color: blue; }
toggle-button:checked:hover { color: green; }
`)
	sheet := p.Parse(input)

	for _, sel := range []string{"button", "button:hover", "toggle-button:checked:hover"} {
		if !sheet.Has(sel) {
			t.Errorf("expected selector %q to be present, have %v", sel, sheet.Order())
		}
	}
	b, _ := sheet.Block("toggle-button:checked:hover")
	if v, _ := b.Property("color"); v.String() != "green" {
		t.Errorf("color = %q, want %q", v.String(), "green")
	}
}

func TestParser_GroupedSelectors(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`form, panel, label { background-color: #112233; }`))

	expected := []string{"form", "panel", "label"}
	order := sheet.Order()
	if len(order) != len(expected) {
		t.Fatalf("expected %d selectors, got %d (%v)", len(expected), len(order), order)
	}
	for i, sel := range expected {
		if order[i] != sel {
			t.Errorf("selector %d: expected %q, got %q", i, sel, order[i])
		}
		b, _ := sheet.Block(sel)
		if v, _ := b.Property("background-color"); v.String() != "#112233" {
			t.Errorf("%s background-color = %q, want %q", sel, v.String(), "#112233")
		}
	}
}

func TestParser_RepeatedSelectorMerges(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
label { color: red; margin: 1px; }
label { color: blue; }
`))

	b, ok := sheet.Block("label")
	if !ok {
		t.Fatal("expected 'label' block")
	}
	if v, _ := b.Property("color"); v.String() != "blue" {
		t.Errorf("color = %q, want later declaration %q", v.String(), "blue")
	}
	if v, _ := b.Property("margin"); v.String() != "1px" {
		t.Errorf("margin = %q, want %q", v.String(), "1px")
	}
}

func TestParser_FunctionValues(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`panel {
  background-color: rgb(255, 0, 0);
  background-image: linear-gradient(to top, red, blue);
  margin: 1px 2px 3px 4px;
  color: rgba( 1 ,2,3 , 0.5 );
  font-family: "A B",serif;
}`))

	b, _ := sheet.Block("panel")
	tests := map[string]string{
		"background-color": "rgb(255, 0, 0)",
		"background-image": "linear-gradient(to top, red, blue)",
		"margin":           "1px 2px 3px 4px",
		"color":            "rgba(1, 2, 3, 0.5)",
		"font-family":      `"A B", serif`,
	}
	for name, want := range tests {
		v, ok := b.Property(name)
		if !ok {
			t.Errorf("expected property %q", name)
			continue
		}
		if v.String() != want {
			t.Errorf("%s = %q, want %q", name, v.String(), want)
		}
	}
}

func TestParser_QuotedStringsKeepQuotes(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`theme { name: "Dark Matter"; authors: 'Someone'; }`))

	b, ok := sheet.Block("theme")
	if !ok {
		t.Fatal("expected 'theme' block")
	}
	if v, _ := b.Property("name"); v.String() != `"Dark Matter"` {
		t.Errorf("name = %s, want %s", v.String(), `"Dark Matter"`)
	}
}

func TestParser_SkipsAtRules(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
@media screen { button { color: red; } }
label { color: blue; }
`))

	if sheet.Has("button") {
		t.Error("rules inside @media must be skipped")
	}
	if !sheet.Has("label") {
		t.Error("expected 'label' selector after skipped @media block")
	}
	if len(sheet.Warnings) == 0 {
		t.Error("expected a warning for skipped @media block")
	}
}

func TestParser_SelectorsReturnsCopies(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`label { color: red; }`))

	props := sheet.Selectors()["label"].Properties()
	props["color"] = css.Value{Raw: "blue"}

	b, _ := sheet.Block("label")
	if v, _ := b.Property("color"); v.String() != "red" {
		t.Errorf("stylesheet was modified through returned map: color = %q", v.String())
	}
}

func TestParser_Empty(t *testing.T) {
	p := css.NewParser(nil)

	sheet := p.Parse(nil)
	if len(sheet.Selectors()) != 0 {
		t.Errorf("expected no selectors, got %d", len(sheet.Selectors()))
	}
}

func TestParser_DeclarationOrder(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	sheet := p.Parse([]byte(`
panel { margin: 1px; margin-top: 2px; color: red; }
panel { margin: 3px; }
`))

	b, _ := sheet.Block("panel")
	got := b.Names()
	want := []string{"margin-top", "color", "margin"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
