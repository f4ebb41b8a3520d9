package types

// Item is a single content item as the host hands it to panels.
type Item struct {
	ID          string            `json:"id"`
	ContentType string            `json:"content_type"`
	Title       string            `json:"title"`
	Status      string            `json:"status"`
	Content     string            `json:"content,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}
