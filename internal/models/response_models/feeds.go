package response_models

type FeedStatus string

const (
	FeedIdle    FeedStatus = "idle"
	FeedLoading FeedStatus = "loading"
	FeedSuccess FeedStatus = "success"
	FeedError   FeedStatus = "error"
)

// FeedState is a snapshot of one category feed. Data survives a failed refresh.
type FeedState[T any] struct {
	Status  FeedStatus `json:"status"`
	Data    []T        `json:"data"`
	Loading bool       `json:"loading"`
	Error   *string    `json:"error"`
}

func (s FeedState[T]) HasError() bool { return s.Error != nil }

func (s FeedState[T]) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"rating_count"`
	Address     string   `json:"address"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Badge       string   `json:"badge"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

type Event struct {
	ID          string `json:"id"`
	PlaceID     string `json:"place_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       string `json:"price"`
}

type Blog struct {
	ID          string  `json:"id"`
	PlaceID     string  `json:"place_id"`
	Title       string  `json:"title"`
	Excerpt     string  `json:"excerpt"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	PublishedAt string  `json:"published_at"`
	ReadTime    string  `json:"read_time"`
	PlaceName   string  `json:"place_name"`
	Rating      float64 `json:"rating"`
}

type Advertisement struct {
	ID          string  `json:"id"`
	PlaceID     string  `json:"place_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	Badge       string  `json:"badge"`
	Rating      float64 `json:"rating"`
	Address     string  `json:"address"`
	ValidUntil  string  `json:"valid_until"`
}
