package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/concrete-theme/concrete/internal/palette"
)

// DefaultTitle is the page heading used when none is configured
const DefaultTitle = "Concrete Dark Palette"

const pageStyle = `body { font-family: sans-serif; }
ul { list-style: none; display: flex; flex-wrap: wrap; border: 1px dotted black; padding: 10px; }
li:not(.color) { margin-left: 2px; margin-bottom: 8px; }
.color { width: 100px; height: 100px; display: flex; align-items: center; justify-content: center; border: 2px solid; font-size: 10px; }
.label { margin-right: 8px; margin-bottom: 8px; }`

// Page wraps the rendered table in a complete HTML document. It performs no
// I/O; callers write or serve the result.
func Page(tree *palette.Node, title string) string {
	if title == "" {
		title = DefaultTitle
	}
	t := html.EscapeString(title)

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
<h1>%s</h1>
<ul class="colors">
`, t, pageStyle, t)

	if body := Render(tree); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}
