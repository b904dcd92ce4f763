package models

// WebCitation is a web page the search tool grounded its answer on.
type WebCitation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Citation is one grounding record returned alongside a generated payload.
// Web is nil for non-web grounding sources.
type Citation struct {
	Web *WebCitation `json:"web,omitempty"`
}

// WebSources keeps only the citations that can be rendered as links.
func WebSources(citations []Citation) []Citation {
	sources := make([]Citation, 0, len(citations))
	for _, c := range citations {
		if c.Web == nil {
			continue
		}
		sources = append(sources, c)
	}
	return sources
}
