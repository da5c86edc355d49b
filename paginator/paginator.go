// Package paginator iterates listing operations across pages.
//
// Listing outputs carry an opaque NextToken. The paginator feeds each
// page's token back into the next request unchanged and stops when the
// service returns no token.
//
// Example usage:
//
//	fetch := func(ctx context.Context, token *string) (*chimemessaging.ListChannelsOutput, error) {
//	    in := *params
//	    in.NextToken = token
//	    return api.ListChannels(ctx, &in)
//	}
//
//	// Iterate over every channel
//	for ch, err := range paginator.Paginate[types.ChannelSummary](ctx, fetch) {
//	    if err != nil { ... }
//	    // process ch
//	}
//
//	// Collect at most 100
//	channels, err := paginator.CollectN[types.ChannelSummary](ctx, fetch, 100)
package paginator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"reflect"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

// Page is a listing output that may have more pages.
type Page[T any] interface {
	Items() []T
	NextPageToken() *string
}

// Fetcher fetches one page. The token is nil for the first page and
// otherwise the previous page's NextPageToken, unchanged.
type Fetcher[T any, P Page[T]] func(ctx context.Context, nextToken *string) (P, error)

// ErrNilPage is returned when a fetcher returns neither a page nor an error.
var ErrNilPage = errors.New("paginator: fetcher returned a nil page")

// Option configures pagination.
type Option func(*config)

type config struct {
	logger     *core.Logger
	operation  string
	startToken *string
	limit      int
}

// WithLogger logs every fetched page.
func WithLogger(l *core.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOperation names the operation in log output.
func WithOperation(name string) Option {
	return func(c *config) {
		c.operation = name
	}
}

// WithStartToken resumes from a token returned by an earlier listing.
func WithStartToken(token *string) Option {
	return func(c *config) {
		c.startToken = token
	}
}

// WithLimit stops after n items across all pages. Zero means no limit.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = core.NewNopLogger()
	}
	return c
}

// Pages returns an iterator over whole pages.
//
// Iteration stops after a page without a next token, on the first error,
// or when the service hands back the token it was just given.
func Pages[T any, P Page[T]](ctx context.Context, fetch Fetcher[T, P], opts ...Option) iter.Seq2[P, error] {
	cfg := newConfig(opts)
	return func(yield func(P, error) bool) {
		var zero P
		token := cfg.startToken
		for n := 1; ; n++ {
			if err := ctx.Err(); err != nil {
				yield(zero, err)
				return
			}

			page, err := fetch(ctx, token)
			if err != nil {
				yield(zero, err)
				return
			}
			if isNilPage(page) {
				yield(zero, fmt.Errorf("page %d: %w", n, ErrNilPage))
				return
			}

			next := page.NextPageToken()
			cfg.logger.Page(cfg.operation, n, len(page.Items()), HasMorePages[T](page))

			if !yield(page, nil) {
				return
			}

			if next == nil || *next == "" {
				return
			}
			if token != nil && *token == *next {
				cfg.logger.Warn("%s: service returned the same next token twice, stopping", cfg.operation)
				return
			}
			token = next
		}
	}
}

func isNilPage[P any](page P) bool {
	v := reflect.ValueOf(page)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Paginate returns an iterator over every item across pages, in service order.
func Paginate[T any, P Page[T]](ctx context.Context, fetch Fetcher[T, P], opts ...Option) iter.Seq2[T, error] {
	cfg := newConfig(opts)
	return func(yield func(T, error) bool) {
		var zero T
		count := 0
		for page, err := range Pages(ctx, fetch, opts...) {
			if err != nil {
				yield(zero, err)
				return
			}
			for _, item := range page.Items() {
				if !yield(item, nil) {
					return
				}
				count++
				if cfg.limit > 0 && count >= cfg.limit {
					return
				}
			}
		}
	}
}

// CollectAll fetches all pages and returns all items.
func CollectAll[T any, P Page[T]](ctx context.Context, fetch Fetcher[T, P], opts ...Option) ([]T, error) {
	var result []T
	for item, err := range Paginate(ctx, fetch, opts...) {
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// CollectN fetches up to n items across pages.
func CollectN[T any, P Page[T]](ctx context.Context, fetch Fetcher[T, P], n int, opts ...Option) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	return CollectAll(ctx, fetch, append(append([]Option(nil), opts...), WithLimit(n))...)
}

// HasMorePages reports whether page carries a continuation token.
func HasMorePages[T any](page Page[T]) bool {
	if isNilPage(page) {
		return false
	}
	next := page.NextPageToken()
	return next != nil && *next != ""
}
