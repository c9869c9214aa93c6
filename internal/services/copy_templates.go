package services

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display copy is picked positionally: item i uses entry i mod len(table).

var priceFormatter = message.NewPrinter(language.English)

func baht(amount int) string {
	return priceFormatter.Sprintf("฿%d", amount)
}

func bahtRange(low, high int, unit string) string {
	s := baht(low) + " - " + baht(high)
	if unit != "" {
		s += " / " + unit
	}
	return s
}

func pick[T any](table []T, index int) T {
	return table[index%len(table)]
}

type destinationCopy struct {
	Badge       string
	Description string
	Highlights  []string
}

var destinationTemplates = []destinationCopy{
	{
		Badge:       "Top Rated",
		Description: "%s is one of %s's best loved stops, rated %.1f by %d visitors.",
		Highlights:  []string{"Photo spots", "Local guides"},
	},
	{
		Badge:       "Must Visit",
		Description: "Plan an early start for %s in %s; it scores %.1f from %d reviews.",
		Highlights:  []string{"Sunrise views", "Family friendly"},
	},
	{
		Badge:       "Hidden Gem",
		Description: "Quieter than the headline sights, %s rewards a slow afternoon in %s (%.1f from %d reviews).",
		Highlights:  []string{"Less crowded", "Great for walking"},
	},
	{
		Badge:       "Local Favorite",
		Description: "%s is where people in %s go on weekends, with %.1f stars across %d reviews.",
		Highlights:  []string{"Street food nearby", "Evening visits"},
	},
}

type eventCopy struct {
	Title       string
	Description string
	Time        string
	Price       string
}

var eventTemplates = []eventCopy{
	{Title: "%s Cultural Festival", Description: "Traditional music, dance and crafts at %s.", Time: "17:00 - 22:00", Price: "Free"},
	{Title: "Night Market at %s", Description: "Street food, handmade goods and live performers around %s.", Time: "18:00 - 23:00", Price: "Free"},
	{Title: "Heritage Day: %s", Description: "Guided walks and storytelling about the history of %s.", Time: "09:00 - 16:00", Price: baht(150)},
	{Title: "Art & Craft Fair at %s", Description: "Meet local artisans showcasing silverwork, umbrellas and textiles at %s.", Time: "10:00 - 20:00", Price: baht(100)},
	{Title: "Lantern Evening at %s", Description: "Release wishes with hundreds of lanterns over %s.", Time: "19:00 - 22:00", Price: baht(350)},
}

type blogCopy struct {
	Title   string
	Excerpt string
}

var blogTemplates = []blogCopy{
	{Title: "A Food Lover's Guide to %s", Excerpt: "We spent a day eating our way around %s so you don't have to guess."},
	{Title: "Why %s Belongs on Your Itinerary", Excerpt: "Five reasons %s surprised even our well travelled editors."},
	{Title: "Slow Mornings at %s", Excerpt: "Coffee, quiet corners and the best time of day to visit %s."},
	{Title: "First Timer's Notes: %s", Excerpt: "Everything we wish we had known before our first trip to %s."},
	{Title: "Behind the Scenes at %s", Excerpt: "We talked to the people who make %s what it is today."},
}

var blogAuthors = []string{
	"Nok Srisuk",
	"Ploy Chaiyaporn",
	"Tom Walker",
	"Mali Intarasit",
	"Ken Watanabe",
}

type advertisementCopy struct {
	Category    string
	Title       string
	Description string
	Price       string
	Badge       string
}

var advertisementTemplates = []advertisementCopy{
	{
		Category:    "hotel",
		Title:       "Stay at %s",
		Description: "Book two nights at %s and get breakfast for two included.",
		Price:       bahtRange(1200, 3500, "night"),
		Badge:       "Best Value",
	},
	{
		Category:    "restaurant",
		Title:       "Dine at %s",
		Description: "Show this offer at %s for a complimentary local appetizer.",
		Price:       bahtRange(150, 450, "person"),
		Badge:       "Local Favorite",
	},
	{
		Category:    "shopping",
		Title:       "Shop at %s",
		Description: "Tourist privilege card at %s: extra discounts on local brands.",
		Price:       "Up to 30% off",
		Badge:       "Limited Time",
	},
}
