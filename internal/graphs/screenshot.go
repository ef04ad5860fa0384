package graphs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// chartSettleTime lets echarts finish its entry animation before capture.
const chartSettleTime = 500 * time.Millisecond

// Screenshot opens a rendered HTML snapshot in headless Chrome and saves a PNG
// of the page at the given viewport size. Chrome must be installed.
func Screenshot(ctx context.Context, htmlPath, pngPath string, width, height int) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	pageURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()

	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var png []byte
	err = chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(int64(width), int64(height), 1, false).Do(ctx)
		}),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("canvas", chromedp.ByQuery),
		chromedp.Sleep(chartSettleTime),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return fmt.Errorf("screenshot %s: %w", htmlPath, err)
	}

	return os.WriteFile(pngPath, png, 0o644)
}
