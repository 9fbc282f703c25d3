package chromium

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	"github.com/rios0rios0/corrigir/internal/domain/repositories"
)

// ChromiumPageRendererRepository implements repositories.PageRendererRepository with headless Chromium.
// Every call launches and closes its own browser.
type ChromiumPageRendererRepository struct {
	execPath          string
	navigationTimeout time.Duration
	settleDelay       time.Duration
}

// NewChromiumPageRendererRepository creates a renderer from the renderer settings.
func NewChromiumPageRendererRepository(settings entities.RendererSettings) repositories.PageRendererRepository {
	return &ChromiumPageRendererRepository{
		execPath:          settings.ExecPath,
		navigationTimeout: settings.NavigationTimeout,
		settleDelay:       settings.SettleDelay,
	}
}

func (p *ChromiumPageRendererRepository) Render(ctx context.Context, url string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(p.execPath)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, p.navigationTimeout)
	defer cancelTimeout()

	logger.Infof("Rendering %s in headless Chromium (timeout %s)", url, p.navigationTimeout)

	var html string
	actions := []chromedp.Action{chromedp.Navigate(url)}
	if p.settleDelay > 0 {
		actions = append(actions, chromedp.Sleep(p.settleDelay))
	}
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		return "", fmt.Errorf("%w: %s: %w", entities.ErrRenderPage, url, err)
	}

	logger.Debugf("Rendered %s (%d bytes)", url, len(html))
	return html, nil
}

// allocatorOptions are the flags a container without a sandbox or GPU needs.
func allocatorOptions(execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("disable-extensions", true),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}
