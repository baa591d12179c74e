package notify

// Toast is a transient title/description notice shown by the site.
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
