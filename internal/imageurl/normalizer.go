package imageurl

import (
	"net/url"
	"strings"
)

// cloudMarkers substrings identifying a Cloudinary asset path
var cloudMarkers = []string{"cloudinary", "image/upload"}

// Normalizer resolves image references coming from the backend into absolute URLs.
//
// Supported references:
//   - absolute URL (http/https), returned unchanged when valid
//   - Cloudinary path ("v1234/abc.jpg", "image/upload/..."), resolved against the cloud base
//   - backend media path ("/media/rooms/a.jpg"), resolved against the backend base URL
type Normalizer struct {
	cloudBase   string // https://res.cloudinary.com/{cloud}
	backendBase string
}

// NewNormalizer creates a normalizer. cloudBaseURL is the CDN root (https://res.cloudinary.com),
// cloudName the account segment appended to it.
func NewNormalizer(cloudBaseURL, cloudName, backendBaseURL string) *Normalizer {
	cloudBase := strings.TrimRight(strings.TrimSpace(cloudBaseURL), "/")
	if name := strings.Trim(strings.TrimSpace(cloudName), "/"); name != "" {
		cloudBase += "/" + name
	}
	return &Normalizer{
		cloudBase:   cloudBase,
		backendBase: strings.TrimRight(strings.TrimSpace(backendBaseURL), "/"),
	}
}

// Normalize returns an absolute URL for ref, or "" when it cannot be resolved
func (n *Normalizer) Normalize(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	if isAbsolute(ref) {
		return validated(ref)
	}

	if isCloudPath(ref) {
		return n.resolveCloud(ref)
	}

	if strings.HasPrefix(ref, "/") {
		if n.backendBase == "" {
			return ""
		}
		return validated(n.backendBase + ref)
	}

	return n.resolveCloud(ref)
}

// NormalizeAll resolves refs in order, dropping the ones that cannot be resolved
func (n *Normalizer) NormalizeAll(refs []string) []string {
	result := make([]string, 0, len(refs))
	for _, ref := range refs {
		if resolved := n.Normalize(ref); resolved != "" {
			result = append(result, resolved)
		}
	}
	return result
}

func (n *Normalizer) resolveCloud(ref string) string {
	if n.cloudBase == "" {
		return ""
	}
	return validated(n.cloudBase + "/" + strings.TrimLeft(ref, "/"))
}

func isAbsolute(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isCloudPath(ref string) bool {
	lower := strings.ToLower(ref)
	for _, marker := range cloudMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// validated returns raw if it is an absolute http(s) URL with a host
func validated(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return raw
}
