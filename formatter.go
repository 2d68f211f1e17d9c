package docsearch

import "strings"

// FormatEmbed renders an embed as markdown for terminal or log output.
// Blocks are separated by blank lines; empty decorations are omitted.
func FormatEmbed(e *Embed) string {
	if e == nil {
		return ""
	}

	header := "# " + e.Title
	if e.URL != "" {
		header += "\n<" + e.URL + ">"
	}
	if e.Author != "" {
		header += "\n_" + e.Author + "_"
	}

	parts := []string{header}
	if e.Thumbnail != "" {
		parts = append(parts, "![thumbnail]("+e.Thumbnail+")")
	}
	for _, f := range e.Fields {
		parts = append(parts, "**"+f.Name+"**\n"+f.Value)
	}
	if e.Footer != "" {
		parts = append(parts, "_"+e.Footer+"_")
	}

	return strings.Join(parts, "\n\n")
}
