package preview

import (
	"strings"
	"testing"

	"github.com/concrete-theme/concrete/internal/palette"
)

func TestPage(t *testing.T) {
	tree := palette.Group().MustSet("accent", palette.Leaf("#5c8ddb"))

	page := Page(tree, "")

	checks := []string{
		"<!DOCTYPE html>",
		"<h1>" + DefaultTitle + "</h1>",
		`<ul class="colors">`,
		Swatch("accent", "#5c8ddb"),
		"</html>",
	}
	for _, want := range checks {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if strings.Index(page, "<style>") > strings.Index(page, "<body>") {
		t.Error("style block must be in the head")
	}
}

func TestPageTitle(t *testing.T) {
	page := Page(palette.Group(), "Light & Airy")

	if !strings.Contains(page, "<h1>Light &amp; Airy</h1>") {
		t.Errorf("custom title not rendered escaped:\n%s", page)
	}
	if !strings.Contains(page, "<ul class=\"colors\">\n</ul>") {
		t.Errorf("empty table should produce an empty list:\n%s", page)
	}
}

func TestPageIsPure(t *testing.T) {
	table, err := palette.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if Page(table, "x") != Page(table, "x") {
		t.Error("Page is not deterministic")
	}
}
