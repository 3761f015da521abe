// Package render owns the headless Chrome session used to execute page
// scripts before visible-text extraction. The browser is expensive to
// launch, so one session is started lazily and reused for every HTML
// document in a run.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/gaurav-prasanna/sitehash/logger"
)

const (
	// settleTimeout bounds the wait for the load event and script-driven
	// DOM churn. Elapsing is not an error: partial rendering is captured.
	settleTimeout = 5 * time.Second
	// settleDelay gives scripts a beat to mutate the DOM after load.
	settleDelay = 500 * time.Millisecond
	// captureTimeout bounds the DOM serialization after the settle wait.
	captureTimeout = 2 * time.Second

	// execPathFlag selects the browser binary instead of a launch flag.
	execPathFlag = "exec_path"
)

// Session is a lazily started, reusable headless browser context.
// Not safe for concurrent use; the hashing pipeline is strictly sequential.
type Session struct {
	flags map[string]any

	allocCtx      context.Context
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
}

// NewSession creates a Session with the given launch flags merged over the
// default of headless: true. The browser does not launch until
// EnsureStarted or the first RenderHTML call.
func NewSession(flags map[string]any) *Session {
	merged := map[string]any{"headless": true}
	for name, value := range flags {
		merged[name] = value
	}
	return &Session{flags: merged}
}

// EnsureStarted launches the browser if it is not already running.
func (s *Session) EnsureStarted() error {
	if s.browserCtx != nil {
		return nil
	}

	opts := chromedp.DefaultExecAllocatorOptions[:]
	for name, value := range s.flags {
		if name == execPathFlag {
			if path, ok := value.(string); ok && path != "" {
				opts = append(opts, chromedp.ExecPath(path))
			}
			continue
		}
		opts = append(opts, chromedp.Flag(name, value))
	}

	s.allocCtx, s.cancelAlloc = chromedp.NewExecAllocator(context.Background(), opts...)
	s.browserCtx, s.cancelBrowser = chromedp.NewContext(s.allocCtx)

	// Run an empty task list so a missing browser binary surfaces here
	// instead of in the middle of the first render.
	if err := chromedp.Run(s.browserCtx); err != nil {
		s.Shutdown()
		return fmt.Errorf("starting browser: %w", err)
	}
	logger.Debug("render session started")
	return nil
}

// Shutdown tears down the browser. Safe to call on a session that never
// started, and the session may be started again afterwards.
func (s *Session) Shutdown() {
	if s.cancelBrowser != nil {
		s.cancelBrowser()
		s.cancelBrowser = nil
		s.browserCtx = nil
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
		s.cancelAlloc = nil
		s.allocCtx = nil
	}
}

// RenderHTML loads the document into the browser, waits for it to settle,
// and returns the serialized post-render DOM. If the settle wait times out
// the partially rendered DOM is captured instead; only failures to load or
// serialize the document are errors.
func (s *Session) RenderHTML(ctx context.Context, html string) (string, error) {
	if err := s.EnsureStarted(); err != nil {
		return "", err
	}

	// Chrome only fires load events for navigable resources, so the
	// document is staged as a temporary file rather than injected
	// directly into the page.
	pageURL, cleanup, err := stageDocument(html)
	if err != nil {
		return "", err
	}
	defer cleanup()

	settleCtx, cancelSettle := context.WithTimeout(s.browserCtx, settleTimeout)
	defer cancelSettle()
	err = chromedp.Run(settleCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
	)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		// Partial render accepted: capture whatever has rendered so far.
		logger.Debug("render wait timed out after %s, capturing partial DOM", settleTimeout)
	default:
		return "", fmt.Errorf("rendering document: %w", err)
	}

	// Capture under a fresh deadline so an expired settle context cannot
	// poison the serialization.
	captureCtx, cancelCapture := context.WithTimeout(s.browserCtx, captureTimeout)
	defer cancelCapture()
	var rendered string
	if err := chromedp.Run(captureCtx, chromedp.OuterHTML("html", &rendered, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capturing rendered DOM: %w", err)
	}
	return rendered, nil
}

// stageDocument writes the document to a temporary file and returns its
// file:// URL plus a cleanup function.
func stageDocument(html string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "sitehash-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("staging document: %w", err)
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("staging document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("staging document: %w", err)
	}
	return "file://" + tmp.Name(), cleanup, nil
}
