package generator

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	publicGroup   = "public"
	pageRouteName = "page"
)

// PublicURLs resolves published-page URLs from a go-urlkit route manager. The
// manager is expected to expose a "public" group with a "page" route that
// takes a :slug param.
type PublicURLs struct {
	manager *urlkit.RouteManager
}

// NewPublicURLs wraps a route manager. A nil manager resolves every URL to
// the empty string so callers can treat URL generation as optional.
func NewPublicURLs(manager *urlkit.RouteManager) *PublicURLs {
	return &PublicURLs{manager: manager}
}

// PageURL builds the canonical published URL for a funnel slug.
func (u *PublicURLs) PageURL(slug string) (string, error) {
	if u == nil || u.manager == nil {
		return "", nil
	}

	builder, err := u.safeBuilder(slug)
	if err != nil {
		return "", err
	}

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("generator: build page url: %w", err)
	}
	return url, nil
}

func (u *PublicURLs) safeBuilder(slug string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: route %s.%s not configured: %v", publicGroup, pageRouteName, rec)
		}
	}()
	builder = u.manager.Group(publicGroup).Builder(pageRouteName).WithParam("slug", slug)
	return builder, err
}
