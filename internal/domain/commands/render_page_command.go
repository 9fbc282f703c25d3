package commands

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

var (
	headTagPattern = regexp.MustCompile(`(?i)<head(\s[^>]*)?>`)
	baseTagPattern = regexp.MustCompile(`(?i)<base\s`)
)

// RenderPage is the interface for fetching the fully rendered documentation page.
type RenderPage interface {
	Execute(ctx context.Context) (string, error)
}

// RenderPageCommand renders the configured page so it can be served from this origin
// instead of being framed or embedded from its own.
type RenderPageCommand struct {
	renderer repositories.PageRendererRepository
	pageURL  string
}

// NewRenderPageCommand creates a new RenderPageCommand for the configured page.
func NewRenderPageCommand(
	renderer repositories.PageRendererRepository,
	settings *entities.Settings,
) *RenderPageCommand {
	return &RenderPageCommand{
		renderer: renderer,
		pageURL:  settings.Renderer.URL,
	}
}

func (it *RenderPageCommand) Execute(ctx context.Context) (string, error) {
	html, err := it.renderer.Render(ctx, it.pageURL)
	if err != nil {
		return "", err
	}
	return injectBaseHref(html, it.pageURL)
}

// injectBaseHref points relative links back at the page origin, unless the page sets its own base.
func injectBaseHref(html, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: invalid page URL %q", entities.ErrRenderPage, pageURL)
	}
	if baseTagPattern.MatchString(html) {
		return html, nil
	}

	loc := headTagPattern.FindStringIndex(html)
	if loc == nil {
		return html, nil
	}

	base := fmt.Sprintf(`<base href="%s://%s/">`, parsed.Scheme, parsed.Host)
	var builder strings.Builder
	builder.Grow(len(html) + len(base))
	builder.WriteString(html[:loc[1]])
	builder.WriteString(base)
	builder.WriteString(html[loc[1]:])
	return builder.String(), nil
}
