package repositories

import "context"

// PageRendererRepository loads a page in a browser and returns its rendered HTML.
type PageRendererRepository interface {
	Render(ctx context.Context, url string) (string, error)
}
