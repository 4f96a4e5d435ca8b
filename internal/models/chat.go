package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is the assembled view of one side of a turn. Assistant content
// is Markdown rendered to HTML; user content is carried verbatim.
type ChatMessage struct {
	Role           string `json:"role"`
	Content        string `json:"content"`
	IsRenderedHTML bool   `json:"is_rendered_html"`
}
