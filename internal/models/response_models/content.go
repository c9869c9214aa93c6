package response_models

// StoredBlogPost is an authored post read from the blog_posts collection.
type StoredBlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
	Image       string   `json:"image"`
}

// StoredEvent is an authored event read from the events collection.
type StoredEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}
