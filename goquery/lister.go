// Package goquery provides a zinebox.LinkLister that discovers issue
// tarballs by scraping anchor tags from a remote archive index page.
package goquery

import (
	"bytes"
	"context"
	"net/url"
	"path"

	"github.com/PuerkitoBio/goquery"
	"github.com/PuerkitoBio/purell"
	"github.com/fwojciec/zinebox"
	"github.com/fwojciec/zinebox/bloom"
)

// expectedIndexSize sizes the dedup filter. Archive indexes run to a few
// hundred entries; sort-order links can multiply that several times over.
const expectedIndexSize = 4096

// Ensure Lister implements zinebox.LinkLister at compile time.
var _ zinebox.LinkLister = (*Lister)(nil)

// Lister discovers download candidates from an archive index page.
// The index is a plain directory listing; every anchor whose target passes
// zinebox.IsArchiveName becomes a candidate.
type Lister struct {
	fetcher zinebox.Fetcher
}

// NewLister creates a Lister that retrieves index pages via fetcher.
func NewLister(fetcher zinebox.Fetcher) *Lister {
	return &Lister{fetcher: fetcher}
}

// ListLinks fetches and parses the index at baseURL and returns the
// tarball candidates it links to, in page order. Entry identity is the
// filename, so candidates are deduplicated by filename: when the index
// links the same tarball under several URLs (sort-order variants, mirror
// hosts), the first link wins.
func (l *Lister) ListLinks(ctx context.Context, baseURL string) ([]zinebox.Candidate, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, zinebox.Errorf(zinebox.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	page, err := l.fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, zinebox.Errorf(zinebox.EUNAVAILABLE, "parse archive index %s: %v", baseURL, err)
	}

	seen := bloom.NewFilter(expectedIndexSize, 0.01)

	var candidates []zinebox.Candidate
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		normalized, err := normalizeURL(resolved)
		if err != nil {
			return
		}

		name := candidateName(normalized)
		if !zinebox.IsArchiveName(name) {
			return
		}

		if seen.Seen(name) {
			return
		}

		candidates = append(candidates, zinebox.Candidate{
			Filename: name,
			URL:      normalized,
		})
	})

	return candidates, nil
}

// resolveURL resolves a relative href against the index base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// normalizeURL canonicalizes a candidate URL so duplicates collapse to a
// single spelling.
func normalizeURL(rawURL string) (string, error) {
	flags := purell.FlagLowercaseScheme |
		purell.FlagLowercaseHost |
		purell.FlagRemoveDefaultPort |
		purell.FlagRemoveFragment |
		purell.FlagDecodeUnnecessaryEscapes |
		purell.FlagRemoveDuplicateSlashes |
		purell.FlagRemoveDotSegments

	return purell.NormalizeURLString(rawURL, flags)
}

// candidateName extracts the target filename from a candidate URL.
// Query strings (directory sort links) are excluded by construction.
func candidateName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}
