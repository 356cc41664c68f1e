package render_test

import (
	"strings"
	"testing"

	"easel/internal/catalog"
	"easel/internal/render"
	"easel/internal/testsupport"
)

func rec(title, location string) catalog.Record {
	return catalog.Record{
		Title:       title,
		Location:    location,
		Filename:    strings.ToLower(title) + ".jpg",
		Medium:      "Oil on canvas",
		Price:       "120",
		Description: "A painting",
	}
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	r, err := render.New(cfg)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

func TestCardContents(t *testing.T) {
	r := newRenderer(t)

	card, err := r.Card(rec("Dawn", "boston"), "painting-card")
	if err != nil {
		t.Fatalf("Card: %v", err)
	}

	for _, want := range []string{
		`class="painting-card"`,
		"<h3>Dawn</h3>",
		`<p class="medium">Oil on canvas</p>`,
		"From $120",
		"ORDER PRINT",
		"/boston/dawn.jpg",
	} {
		if !strings.Contains(card, want) {
			t.Fatalf("card missing %q:\n%s", want, card)
		}
	}
}

func TestCardEscapesFieldText(t *testing.T) {
	r := newRenderer(t)

	hostile := catalog.Record{
		Title:       `O'Keeffe's "View" <script>`,
		Location:    "boston",
		Filename:    "view.jpg",
		Medium:      "Oil",
		Price:       "120",
		Description: `quotes ' and "tags" <b>here</b>`,
	}

	card, err := r.Card(hostile, "painting-card")
	if err != nil {
		t.Fatalf("Card: %v", err)
	}

	if strings.Contains(card, "<script>") {
		t.Fatalf("raw markup leaked into HTML context:\n%s", card)
	}
	if !strings.Contains(card, "&lt;script&gt;") {
		t.Fatalf("title not HTML-escaped:\n%s", card)
	}
	if strings.Contains(card, "<b>here</b>") {
		t.Fatalf("description not escaped:\n%s", card)
	}
	// The trigger arguments are JS string literals; a bare apostrophe there
	// would terminate the argument early.
	if strings.Contains(card, `openOrderModal('O'`) {
		t.Fatalf("apostrophe leaked into trigger argument:\n%s", card)
	}
	// The apostrophe must come out as a backslash escape; the exact
	// sequence is the escaper's choice.
	if !strings.Contains(card, `openOrderModal('O\`) {
		t.Fatalf("expected JS escaping of apostrophe in trigger:\n%s", card)
	}
}

func TestRenderGroupsInConfiguredOrder(t *testing.T) {
	r := newRenderer(t)

	// Input order interleaves categories; display order must follow config.
	records := []catalog.Record{
		rec("Mist", "misc"),
		rec("Dawn", "boston"),
		rec("Dusk", "boston"),
	}

	frag, err := r.Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	gallery := frag.Gallery
	bostonIdx := strings.Index(gallery, `id="boston-tab"`)
	miscIdx := strings.Index(gallery, `id="misc-tab"`)
	if bostonIdx == -1 || miscIdx == -1 {
		t.Fatalf("expected boston and misc panels:\n%s", gallery)
	}
	if bostonIdx > miscIdx {
		t.Fatal("panels not in configured order")
	}
	if strings.Contains(gallery, `id="delaware-tab"`) {
		t.Fatalf("empty bucket must be omitted:\n%s", gallery)
	}
	// Button row still lists every configured category.
	if !strings.Contains(gallery, "Delaware, OH") {
		t.Fatalf("expected delaware button label:\n%s", gallery)
	}

	bostonPanel := gallery[bostonIdx:miscIdx]
	if got := strings.Count(bostonPanel, "openOrderModal"); got != 2 {
		t.Fatalf("boston panel card count: got %d want 2", got)
	}
	miscPanel := gallery[miscIdx:]
	if got := strings.Count(miscPanel, "openOrderModal"); got != 1 {
		t.Fatalf("misc panel card count: got %d want 1", got)
	}
}

func TestRenderCardCountMatchesGroupMembership(t *testing.T) {
	r := newRenderer(t)

	records := []catalog.Record{
		rec("A", "boston"), rec("B", "delaware"), rec("C", "boston"),
		rec("D", "misc"), rec("E", "boston"),
	}

	frag, err := r.Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.Count(frag.Gallery, "openOrderModal"); got != 5 {
		t.Fatalf("total cards: got %d want 5", got)
	}
}

func TestRenderFeaturedSubset(t *testing.T) {
	r := newRenderer(t)

	dawn := rec("Dawn", "boston")
	dawn.Featured = true
	records := []catalog.Record{dawn, rec("Dusk", "boston")}

	frag, err := r.Render(records)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if frag.FeaturedEmpty {
		t.Fatal("expected featured section")
	}
	if !strings.Contains(frag.Featured, "Featured Works") {
		t.Fatalf("missing heading:\n%s", frag.Featured)
	}
	if !strings.Contains(frag.Featured, "featured-card") {
		t.Fatalf("missing featured card class:\n%s", frag.Featured)
	}
	if got := strings.Count(frag.Featured, "openOrderModal"); got != 1 {
		t.Fatalf("featured card count: got %d want 1", got)
	}
	if !strings.HasPrefix(frag.Sections(), frag.Featured) {
		t.Fatal("Sections must start with the featured section")
	}
}

func TestRenderEmptyFeaturedIsWarningNotError(t *testing.T) {
	r := newRenderer(t)

	frag, err := r.Render([]catalog.Record{rec("Dusk", "boston")})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !frag.FeaturedEmpty {
		t.Fatal("expected FeaturedEmpty")
	}
	if frag.Featured != "" {
		t.Fatalf("expected empty featured fragment, got:\n%s", frag.Featured)
	}
	if frag.Sections() != frag.Gallery {
		t.Fatal("Sections must equal gallery when featured is empty")
	}
}

func TestScriptBlockUsesFirstCategory(t *testing.T) {
	r := newRenderer(t)

	script := r.ScriptBlock()
	if !strings.Contains(script, "function showTab(") {
		t.Fatalf("missing showTab definition:\n%s", script)
	}
	if !strings.Contains(script, "getElementById('boston-tab')") {
		t.Fatalf("default tab should be first configured category:\n%s", script)
	}
}
