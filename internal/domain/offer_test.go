package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type prefixNormalizer struct{}

func (prefixNormalizer) Normalize(ref string) string {
	if strings.HasPrefix(ref, "bad") {
		return ""
	}
	return "https://cdn.test/" + ref
}

func TestNewRoomOffer(t *testing.T) {
	room := Room{
		ID:          7,
		Name:        "Deluxe",
		NightlyRate: ParsePrice("50000"),
		Images:      []string{"a.jpg", "bad.jpg", "b.jpg"},
	}

	offer := NewRoomOffer(room, 2, prefixNormalizer{})

	assert.True(t, offer.HasTotal)
	assert.Equal(t, 100000.0, offer.Total)
	assert.Equal(t, []string{"https://cdn.test/a.jpg", "https://cdn.test/b.jpg"}, offer.Images)
	assert.Equal(t, "https://cdn.test/a.jpg", offer.CoverImage())
}

func TestNewRoomOffer_InvalidPriceFallsBack(t *testing.T) {
	offer := NewRoomOffer(Room{NightlyRate: ParsePrice("call us")}, 2, prefixNormalizer{})

	assert.False(t, offer.HasTotal)
	assert.Zero(t, offer.Total)
	assert.Empty(t, offer.CoverImage())
}

func TestNewRoomOffers_KeepsOrder(t *testing.T) {
	rooms := []Room{{ID: 3}, {ID: 1}, {ID: 2}}

	offers := NewRoomOffers(rooms, 1, prefixNormalizer{})

	ids := make([]int64, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.Room.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}
