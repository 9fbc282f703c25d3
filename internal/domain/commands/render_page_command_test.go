//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/corrigir/internal/domain/commands"
	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/test/infrastructure/repositorydoubles"
)

func TestRenderPageCommand_Execute(t *testing.T) {
	t.Parallel()

	settings := &entities.Settings{
		Renderer: entities.RendererSettings{URL: "https://docs.example.com/reference/home"},
	}

	t.Run("should render the configured page with a base pointing at its origin", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &repositorydoubles.StubPageRendererRepository{
			HTML: `<html><head><title>Docs</title></head><body></body></html>`,
		}
		command := commands.NewRenderPageCommand(renderer, settings)

		// when
		html, err := command.Execute(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/reference/home"}, renderer.RenderedURLs)
		assert.Equal(t,
			`<html><head><base href="https://docs.example.com/"><title>Docs</title></head><body></body></html>`,
			html,
		)
	})

	t.Run("should propagate a renderer failure", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &repositorydoubles.StubPageRendererRepository{RenderErr: entities.ErrRenderPage}
		command := commands.NewRenderPageCommand(renderer, settings)

		// when
		html, err := command.Execute(context.Background())

		// then
		require.ErrorIs(t, err, entities.ErrRenderPage)
		assert.Empty(t, html)
	})
}

func TestInjectBaseHref(t *testing.T) {
	t.Parallel()

	t.Run("should keep attributes of the head tag", func(t *testing.T) {
		t.Parallel()

		// given
		html := `<HTML><HEAD lang="pt"><meta charset="utf-8"></HEAD></HTML>`

		// when
		result, err := commands.InjectBaseHref(html, "http://localhost:8080/x/y")

		// then
		require.NoError(t, err)
		assert.Equal(t, `<HTML><HEAD lang="pt"><base href="http://localhost:8080/"><meta charset="utf-8"></HEAD></HTML>`, result)
	})

	t.Run("should leave a page with its own base untouched", func(t *testing.T) {
		t.Parallel()

		// given
		html := `<html><head><base href="/docs/"></head></html>`

		// when
		result, err := commands.InjectBaseHref(html, "https://docs.example.com/")

		// then
		require.NoError(t, err)
		assert.Equal(t, html, result)
	})

	t.Run("should leave a page without head untouched", func(t *testing.T) {
		t.Parallel()

		// given
		html := `<p>fragment</p>`

		// when
		result, err := commands.InjectBaseHref(html, "https://docs.example.com/")

		// then
		require.NoError(t, err)
		assert.Equal(t, html, result)
	})

	t.Run("should not mistake a header tag for head", func(t *testing.T) {
		t.Parallel()

		// given
		html := `<body><header>x</header></body>`

		// when
		result, err := commands.InjectBaseHref(html, "https://docs.example.com/")

		// then
		require.NoError(t, err)
		assert.Equal(t, html, result)
	})

	t.Run("should fail for a page URL without host", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := commands.InjectBaseHref("<head></head>", "not a url")

		// then
		require.ErrorIs(t, err, entities.ErrRenderPage)
	})
}
