package command

import "strings"

// Normalize cleans scraped markdown and prefixes it with a "URL: " header.
//
// Each newline-terminated line has its trailing spaces removed; a line that
// was nothing but spaces is dropped along with its newline. Tabs, interior
// whitespace, empty lines and the final unterminated line are left alone.
func Normalize(markdown, sourceURL string) string {
	var b strings.Builder
	b.Grow(len("URL: \n") + len(sourceURL) + len(markdown))
	b.WriteString("URL: ")
	b.WriteString(sourceURL)
	b.WriteByte('\n')

	rest := markdown
	for {
		line, tail, found := strings.Cut(rest, "\n")
		if !found {
			b.WriteString(line)
			break
		}
		trimmed := strings.TrimRight(line, " ")
		if trimmed != "" || line == "" {
			b.WriteString(trimmed)
			b.WriteByte('\n')
		}
		rest = tail
	}

	return b.String()
}
