package scraper

import (
	"context"
	"fmt"
	"time"
)

// fakeSession serves canned pages keyed by URL. SubmitSearch jumps to
// a fixed results URL, mimicking the site redirecting the query.
type fakeSession struct {
	pages      map[string]string
	searchURL  string
	currentURL string

	navigations []string
	searches    []string
	waitErr     error
}

func (f *fakeSession) Navigate(_ context.Context, url string) error {
	f.navigations = append(f.navigations, url)
	f.currentURL = url
	return nil
}

func (f *fakeSession) CurrentURL() string { return f.currentURL }

func (f *fakeSession) Content() (string, error) {
	html, ok := f.pages[f.currentURL]
	if !ok {
		return "", fmt.Errorf("no page for %s", f.currentURL)
	}
	return html, nil
}

func (f *fakeSession) SubmitSearch(_ context.Context, _, query string) error {
	f.searches = append(f.searches, query)
	f.currentURL = f.searchURL
	return nil
}

func (f *fakeSession) WaitVisible(context.Context, string, time.Duration) error {
	return f.waitErr
}

func (f *fakeSession) Settle(context.Context, time.Duration) error { return nil }
