package textextract

import (
	"bufio"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// fromHTML distills an HTML document to line-oriented text. Block elements
// become one line each so that "Label: Value" rows keep their line boundaries
// for the extractor. Readability strips boilerplate first, but its output is
// only trusted when it keeps most of the document; form-like pages with no
// article body fall back to the full document.
func fromHTML(html string) (string, error) {
	full, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	fullLines := extractLines(full)

	lines := fullLines
	base, _ := url.Parse("file:///document.html")
	parser := readability.NewParser()
	if article, err := parser.Parse(strings.NewReader(html), base); err == nil && strings.TrimSpace(article.Content) != "" {
		if distilled, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content)); err == nil {
			distilledLines := extractLines(distilled)
			if 2*textLen(distilledLines) >= textLen(fullLines) {
				lines = distilledLines
			}
		}
	}

	// No block structure at all: take the flattened text as a single line.
	if len(lines) == 0 {
		if text := collapseWhitespace(full.Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func extractLines(doc *goquery.Document) []string {
	var lines []string
	doc.Find("h1,h2,h3,h4,h5,h6,p,li,tr,dt,dd,pre").Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) == "tr" {
			if row := extractRow(s); row != "" {
				lines = append(lines, row)
			}
			return
		}
		if text := collapseWhitespace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return lines
}

func textLen(lines []string) int {
	n := 0
	for _, line := range lines {
		n += len(line)
	}
	return n
}

// extractRow renders a table row as one line. Two-cell rows read as a
// label/value pair, so they are joined with a colon; wider rows just get
// spaces.
func extractRow(s *goquery.Selection) string {
	var cells []string
	s.Find("th,td").Each(func(i int, cell *goquery.Selection) {
		if text := collapseWhitespace(cell.Text()); text != "" {
			cells = append(cells, text)
		}
	})
	if len(cells) == 2 && !strings.HasSuffix(cells[0], ":") {
		return cells[0] + ": " + cells[1]
	}
	return strings.Join(cells, " ")
}

// collapseWhitespace trims each line and joins non-empty lines with a single
// space.
func collapseWhitespace(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
