package staffomatic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// PageIterator lazily fetches the pages of a paginated endpoint. Each call to
// Next fetches one page, the next page is the one the server links to with
// rel="next". Reset restarts the iteration from the first page.
//
// The iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	client  *Client
	path    string
	query   url.Values
	nextURL string
	started bool
	done    bool
}

// paginate creates a PageIterator for a paginated GET endpoint. No request is
// sent before the first call to Next.
func paginate[T any](client *Client, path string, query url.Values) *PageIterator[T] {
	return &PageIterator[T]{
		client: client,
		path:   path,
		query:  query,
	}
}

// Next fetches the next page and returns its items. It returns nil, nil once
// every page has been consumed.
func (iterator *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if iterator.done {
		return nil, nil
	}

	target, query := iterator.nextURL, url.Values(nil)
	if !iterator.started {
		target, query = iterator.path, iterator.query
	}

	res, err := iterator.client.do(ctx, http.MethodGet, target, query, nil, nil)
	if err != nil {
		return nil, err
	}
	iterator.started = true

	items := []T{}
	if body := res.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, errors.Wrapf(err, "unable to decode page of %s", res.Request.URL)
		}
	}

	iterator.nextURL = parseLinkNext(res.Header().Get("Link"))
	if iterator.nextURL == "" {
		iterator.done = true
	}

	return items, nil
}

// Done tells if every page has been fetched
func (iterator *PageIterator[T]) Done() bool {
	return iterator.done
}

// Reset rewinds the iterator to the first page
func (iterator *PageIterator[T]) Reset() {
	iterator.nextURL = ""
	iterator.started = false
	iterator.done = false
}

// Collect fetches all remaining pages and returns their items in order
func (iterator *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	all := []T{}
	for !iterator.Done() {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// parseLinkNext extracts the url with the "next" relation from a Link header.
//
// Format: <https://api.staffomaticapp.com/v3/users?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	for _, part := range splitLinks(header) {
		segments := strings.Split(strings.TrimSpace(part), ";")
		link := strings.TrimSpace(segments[0])
		if len(segments) < 2 || !strings.HasPrefix(link, "<") || !strings.HasSuffix(link, ">") {
			continue
		}

		for _, param := range segments[1:] {
			name, value, found := strings.Cut(param, "=")
			if !found || !strings.EqualFold(strings.TrimSpace(name), "rel") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
				if strings.EqualFold(rel, "next") {
					return link[1 : len(link)-1]
				}
			}
		}
	}
	return ""
}

// splitLinks splits a Link header on the commas found outside of <...>
func splitLinks(header string) []string {
	var links []string
	depth, start := 0, 0
	for i, r := range header {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				links = append(links, header[start:i])
				start = i + 1
			}
		}
	}
	return append(links, header[start:])
}
