package helpers

import "strings"

// FallbackSlug is used when a title reduces to nothing, e.g. "???".
const FallbackSlug = "untitled-post"

// Slugify derives a URL-safe base slug from a post title: lowercase, strip
// everything outside [a-z0-9 -], collapse whitespace runs to a single
// hyphen, collapse hyphen runs, trim leading/trailing hyphens.
// Uniqueness against existing posts is the caller's concern.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}

	slug := b.String()
	slug = strings.Join(strings.Fields(slug), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return FallbackSlug
	}
	return slug
}
