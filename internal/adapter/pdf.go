// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Certificates are laid out at 1056x816 CSS pixels, which is US Letter
// landscape at 96 DPI.
const (
	pdfPaperWidthInches  = 11.0
	pdfPaperHeightInches = 8.5
)

type chromePDFConverter struct {
	chromeURL string
	timeout   time.Duration

	logger *logger.Logger
}

// NewChromePDFConverter returns a [PDFConverter] backed by chromedp. With
// cfg.ChromeURL set it attaches to that remote DevTools endpoint, otherwise a
// local headless Chrome is started per conversion.
func NewChromePDFConverter(cfg config.Adapter, logger *logger.Logger) PDFConverter {
	return &chromePDFConverter{
		chromeURL: cfg.ChromeURL,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
	}
}

func (c *chromePDFConverter) ConvertHTML(ctx context.Context, document string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	allocCtx, allocCancel := c.allocator(ctx)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, document).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pdfPaperWidthInches).
				WithPaperHeight(pdfPaperHeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		c.logger.Err(err).Str("func", "*chromePDFConverter.ConvertHTML").Msg("chrome failed to print document")
		return nil, fmt.Errorf("%w: %w", ErrPrintingPDF, err)
	}

	return pdf, nil
}

func (c *chromePDFConverter) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.chromeURL != "" {
		return chromedp.NewRemoteAllocator(ctx, c.chromeURL)
	}
	return chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
}
