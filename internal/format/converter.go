// Package format converts HTML email bodies to readable plain text.
package format

import (
	"strings"

	"github.com/k3a/html2text"
)

// HTML2Text converts an HTML body to plain text. Layout-only tables are
// flattened first so the result reads top to bottom instead of cell by cell.
func HTML2Text(raw []byte) string {
	flattened := flattenLayoutTables(raw)

	return strings.TrimSpace(html2text.HTML2Text(string(flattened)))
}
