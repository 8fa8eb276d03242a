package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer("https://res.cloudinary.com/", "demo-cloud", "http://127.0.0.1:8000/")
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()

	cases := []struct {
		name string
		ref  string
		want string
	}{
		{"cloudinary relative", "v1234/abc.jpg", "https://res.cloudinary.com/demo-cloud/v1234/abc.jpg"},
		{"cloudinary upload path", "image/upload/v1/rooms/a.jpg", "https://res.cloudinary.com/demo-cloud/image/upload/v1/rooms/a.jpg"},
		{"cloud marker wins over slash", "/image/upload/v1/a.jpg", "https://res.cloudinary.com/demo-cloud/image/upload/v1/a.jpg"},
		{"backend media", "/media/rooms/a.jpg", "http://127.0.0.1:8000/media/rooms/a.jpg"},
		{"absolute https", "https://images.unsplash.com/photo-1?w=800", "https://images.unsplash.com/photo-1?w=800"},
		{"absolute http", "http://localhost:8000/media/a.jpg", "http://localhost:8000/media/a.jpg"},
		{"absolute without host", "https://", ""},
		{"broken absolute", "http://[::1", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(tc.ref))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newTestNormalizer()

	for _, ref := range []string{"v1234/abc.jpg", "/media/a.jpg", "https://example.com/x.png"} {
		once := n.Normalize(ref)
		assert.NotEmpty(t, once)
		assert.Equal(t, once, n.Normalize(once))
	}
}

func TestNormalize_MissingBases(t *testing.T) {
	n := NewNormalizer("", "", "")

	assert.Empty(t, n.Normalize("v1234/abc.jpg"))
	assert.Empty(t, n.Normalize("/media/a.jpg"))
	assert.Equal(t, "https://example.com/a.jpg", n.Normalize("https://example.com/a.jpg"))
}

func TestNormalizeAll(t *testing.T) {
	n := newTestNormalizer()

	got := n.NormalizeAll([]string{"a.jpg", "", "http://[::1", "/media/b.jpg"})

	assert.Equal(t, []string{
		"https://res.cloudinary.com/demo-cloud/a.jpg",
		"http://127.0.0.1:8000/media/b.jpg",
	}, got)
}
