package textextract

import (
	"regexp"
	"strings"
)

var (
	mdHeader     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	mdBoldAlt    = regexp.MustCompile(`__([^_]+)__`)
	mdItalicAlt  = regexp.MustCompile(`_([^_]+)_`)
	mdCodeFence  = regexp.MustCompile("(?s)```[^`]*```")
	mdInlineCode = regexp.MustCompile("`([^`]+)`")
	mdImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdListMarker = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	mdBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes markdown syntax while keeping the readable text:
// headers lose their hashes, emphasis loses its markers, links keep their
// label, images and fenced code blocks disappear entirely.
func StripMarkdown(md string) string {
	s := mdCodeFence.ReplaceAllString(md, "")
	s = mdHeader.ReplaceAllString(s, "")
	s = mdBold.ReplaceAllString(s, "$1")
	s = mdBoldAlt.ReplaceAllString(s, "$1")
	s = mdItalic.ReplaceAllString(s, "$1")
	s = mdItalicAlt.ReplaceAllString(s, "$1")
	s = mdInlineCode.ReplaceAllString(s, "$1")
	s = mdImage.ReplaceAllString(s, "")
	s = mdLink.ReplaceAllString(s, "$1")
	s = mdListMarker.ReplaceAllString(s, "")
	s = mdBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
