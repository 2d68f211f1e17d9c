package docsearch

// ManualPage is the structured content extracted from a manual page.
type ManualPage struct {
	// Summary is the text of the NAME section.
	Summary  string
	Sections []ManualSection
}

// ManualSection is one named section of a manual page.
type ManualSection struct {
	Name string
	// Text is the section's text content, one block per element.
	Text string
	// HTML is the section's markup, used when converting to markdown.
	HTML string
}
