package domain

// ImageNormalizer resolves a raw image reference into a displayable absolute URL or ""
type ImageNormalizer interface {
	Normalize(ref string) string
}

// RoomOffer is a room priced for a concrete stay and ready for display
type RoomOffer struct {
	Room     Room
	Images   []string // normalized, unresolvable references dropped
	Nights   int
	Total    float64
	HasTotal bool // false when the nightly rate is unusable; the page shows a placeholder
}

// NewRoomOffer prices the room for the given number of nights and resolves its images
func NewRoomOffer(room Room, nights int, images ImageNormalizer) RoomOffer {
	offer := RoomOffer{
		Room:   room,
		Images: make([]string, 0, len(room.Images)),
		Nights: nights,
	}

	for _, ref := range room.Images {
		if resolved := images.Normalize(ref); resolved != "" {
			offer.Images = append(offer.Images, resolved)
		}
	}

	if total, err := CalculateTotal(nights, room.NightlyRate); err == nil {
		offer.Total = total
		offer.HasTotal = true
	}

	return offer
}

// CoverImage returns the first resolved image or ""
func (o RoomOffer) CoverImage() string {
	if len(o.Images) == 0 {
		return ""
	}
	return o.Images[0]
}

// NewRoomOffers prices every room in order
func NewRoomOffers(rooms []Room, nights int, images ImageNormalizer) []RoomOffer {
	offers := make([]RoomOffer, 0, len(rooms))
	for _, room := range rooms {
		offers = append(offers, NewRoomOffer(room, nights, images))
	}
	return offers
}
