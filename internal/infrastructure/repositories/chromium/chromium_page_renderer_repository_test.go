package chromium_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	chRepo "github.com/rios0rios0/corrigir/internal/infrastructure/repositories/chromium"
)

func TestAllocatorOptions(t *testing.T) {
	t.Parallel()

	t.Run("should add the executable path only when configured", func(t *testing.T) {
		t.Parallel()

		// given
		withoutPath := chRepo.AllocatorOptions("")

		// when
		withPath := chRepo.AllocatorOptions("/usr/bin/chromium-browser")

		// then
		assert.Len(t, withPath, len(withoutPath)+1)
	})
}

func TestChromiumPageRendererRepository_Render(t *testing.T) {
	t.Parallel()

	t.Run("should wrap a browser launch failure as a render error", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := chRepo.NewChromiumPageRendererRepository(entities.RendererSettings{
			ExecPath:          "/nonexistent/chromium",
			NavigationTimeout: 5 * time.Second,
		})

		// when
		html, err := renderer.Render(context.Background(), "https://docs.example.com/")

		// then
		require.ErrorIs(t, err, entities.ErrRenderPage)
		assert.Empty(t, html)
	})
}
