package docsearch

// Size limits imposed by chat platforms on rich embeds.
const (
	EmbedTitleLimit = 256
	FieldNameLimit  = 256
	FieldValueLimit = 1024
)

// Embed is the display payload produced by every lookup: a titled card
// with named fields and optional decorations.
type Embed struct {
	Title     string  `json:"title"`
	URL       string  `json:"url,omitempty"`
	Author    string  `json:"author,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Footer    string  `json:"footer,omitempty"`
	Fields    []Field `json:"fields"`
}

// Field is a named block of an Embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NewEmbed returns an Embed with the title truncated to EmbedTitleLimit.
func NewEmbed(title string) *Embed {
	return &Embed{Title: truncate(title, EmbedTitleLimit)}
}

// AddField appends a field, truncating name and value to platform limits.
func (e *Embed) AddField(name, value string, inline bool) {
	e.Fields = append(e.Fields, Field{
		Name:   truncate(name, FieldNameLimit),
		Value:  truncate(value, FieldValueLimit),
		Inline: inline,
	})
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
