package format

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// flattenLayoutTables rewrites HTML so that single-column layout tables
// become plain flowing content. Data tables (headers, multiple columns,
// uniform multi-row bodies) are left alone. Runs bottom-up until the tree
// stops changing, since unwrapping can expose nested tables.
func flattenLayoutTables(raw []byte) []byte {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return raw
	}

	maxPasses := 10
	for range maxPasses {
		if !flattenPass(doc) {
			break
		}
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return raw
	}

	return buf.Bytes()
}

func flattenPass(n *html.Node) bool {
	changed := false

	child := n.FirstChild
	for child != nil {
		next := child.NextSibling
		if flattenPass(child) {
			changed = true
		}
		child = next
	}

	if n.Type == html.ElementNode && n.Data == "table" && isLayoutTable(n) {
		liftTableContent(n)
		changed = true
	}

	return changed
}

func isLayoutTable(table *html.Node) bool {
	var stats tableStats
	stats.collect(table)

	if stats.hasHeader || stats.maxCols > 1 {
		return false
	}

	for _, attr := range table.Attr {
		if attr.Key == "id" && (attr.Val == "main" || strings.Contains(attr.Val, "layout") || strings.Contains(attr.Val, "wrapper")) {
			return true
		}
	}

	// Many uniform single-column rows still read like data.
	if stats.contentRows > 5 && stats.uniformRows() {
		return false
	}

	return true
}

type tableStats struct {
	hasHeader   bool
	maxCols     int
	contentRows int
	rowCells    []int
}

func (s *tableStats) collect(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "th", "thead":
			s.hasHeader = true
		case "tr":
			cells := 0
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells++
				}
			}
			s.rowCells = append(s.rowCells, cells)
			if cells > s.maxCols {
				s.maxCols = cells
			}
			if hasText(n) {
				s.contentRows++
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.collect(c)
	}
}

func (s *tableStats) uniformRows() bool {
	if len(s.rowCells) < 2 {
		return false
	}
	for _, cells := range s.rowCells[1:] {
		if cells != s.rowCells[0] {
			return false
		}
	}
	return true
}

func hasText(n *html.Node) bool {
	if n.Type == html.TextNode {
		t := strings.TrimSpace(n.Data)
		return t != "" && t != "&nbsp;"
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

func liftTableContent(table *html.Node) {
	parent := table.Parent
	if parent == nil {
		return
	}

	var lifted []*html.Node
	collectCellContent(table, &lifted)

	for _, n := range lifted {
		parent.InsertBefore(n, table)
	}
	parent.RemoveChild(table)
}

func collectCellContent(n *html.Node, out *[]*html.Node) {
	switch {
	case n.Type == html.ElementNode && n.Data == "tr":
		before := len(*out)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectCellContent(c, out)
		}
		// Rows become lines.
		if len(*out) > before {
			*out = append(*out, &html.Node{Type: html.TextNode, Data: "\n"})
		}
	case n.Type == html.ElementNode && isTableTag(n.Data):
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collectCellContent(c, out)
		}
	case n.Type == html.ElementNode:
		*out = append(*out, detach(n))
	case n.Type == html.TextNode && strings.TrimSpace(n.Data) != "":
		*out = append(*out, &html.Node{Type: html.TextNode, Data: n.Data})
	}
}

func isTableTag(tag string) bool {
	switch tag {
	case "table", "thead", "tbody", "tfoot", "tr", "td", "th":
		return true
	}
	return false
}

func detach(n *html.Node) *html.Node {
	clone := &html.Node{
		Type: n.Type,
		Data: n.Data,
		Attr: append([]html.Attribute{}, n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(detach(c))
	}
	return clone
}
