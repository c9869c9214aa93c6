package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBlogsFromRestaurantsAndAttractions(t *testing.T) {
	places := newFakePlaces()
	places.results["best restaurants in Chiang Mai"] = placesWithPrefix("food", 4, 4.4)
	places.results["must see attractions in Chiang Mai"] = placesWithPrefix("sight", 2, 4.6)

	svc := NewBlogService(places, testProvinceConfig(), newRecorder(), NewRandomizer(3), fixedNow, zap.NewNop())

	blogs, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 5)

	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	for i, b := range blogs {
		assert.Equal(t, blogAuthors[i%len(blogAuthors)], b.Author)
		published, err := time.Parse("2006-01-02", b.PublishedAt)
		require.NoError(t, err)
		assert.True(t, published.Before(today), "blog %s should be in the past, got %s", b.ID, b.PublishedAt)
		assert.Contains(t, b.Title, b.PlaceName)
	}
	assert.Equal(t, "food", blogs[0].Category)
	assert.Equal(t, "travel", blogs[3].Category)
	assert.Equal(t, "4 min", blogs[0].ReadTime)
	assert.Equal(t, "A Food Lover's Guide to food 1", blogs[0].Title)
}
