package paginator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DrewBradfordXYZ/chimemessaging-go/core"
)

type testPage struct {
	items []string
	next  *string
}

func (p *testPage) Items() []string        { return p.items }
func (p *testPage) NextPageToken() *string { return p.next }

func strPtr(s string) *string { return &s }

// fakeService serves pages keyed by the token that requests them.
type fakeService struct {
	pages  map[string]*testPage
	tokens []*string
	err    error
}

func (f *fakeService) fetch(ctx context.Context, token *string) (*testPage, error) {
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return nil, f.err
	}
	key := ""
	if token != nil {
		key = *token
	}
	p, ok := f.pages[key]
	if !ok {
		return nil, errors.New("unexpected token " + key)
	}
	return p, nil
}

func threePages() *fakeService {
	return &fakeService{pages: map[string]*testPage{
		"":   {items: []string{"a", "b"}, next: strPtr("t1")},
		"t1": {items: []string{"c"}, next: strPtr("t2")},
		"t2": {items: []string{"d", "e"}},
	}}
}

func TestCollectAll(t *testing.T) {
	svc := threePages()
	items, err := CollectAll[string](context.Background(), svc.fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)

	require.Len(t, svc.tokens, 3)
	assert.Nil(t, svc.tokens[0])
	assert.Equal(t, "t1", *svc.tokens[1])
	assert.Equal(t, "t2", *svc.tokens[2])
}

func TestCollectN(t *testing.T) {
	t.Run("stops fetching once the limit is reached", func(t *testing.T) {
		svc := threePages()
		items, err := CollectN[string](context.Background(), svc.fetch, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, items)
		assert.Len(t, svc.tokens, 2)
	})

	t.Run("zero returns nothing", func(t *testing.T) {
		svc := threePages()
		items, err := CollectN[string](context.Background(), svc.fetch, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Empty(t, svc.tokens)
	})
}

func TestPaginateStartToken(t *testing.T) {
	svc := threePages()
	items, err := CollectAll[string](context.Background(), svc.fetch, WithStartToken(strPtr("t1")))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e"}, items)
}

func TestPaginateEmptyTokenEnds(t *testing.T) {
	svc := &fakeService{pages: map[string]*testPage{
		"": {items: []string{"a"}, next: strPtr("")},
	}}
	items, err := CollectAll[string](context.Background(), svc.fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, items)
	assert.Len(t, svc.tokens, 1)
}

func TestPaginateRepeatedToken(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	logger := core.NewLoggerFromZap(zap.New(obs), false)

	svc := &fakeService{pages: map[string]*testPage{
		"":   {items: []string{"a"}, next: strPtr("t1")},
		"t1": {items: []string{"b"}, next: strPtr("t1")},
	}}
	items, err := CollectAll[string](context.Background(), svc.fetch,
		WithLogger(logger), WithOperation("ListChannels"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Len(t, svc.tokens, 2)
	assert.Equal(t, 1, logs.Len())
}

func TestPaginateError(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{err: boom}

	var count int
	for _, err := range Paginate[string](context.Background(), svc.fetch) {
		count++
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, 1, count)

	_, err := CollectAll[string](context.Background(), svc.fetch)
	assert.ErrorIs(t, err, boom)
}

func TestPaginateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := threePages()
	_, err := CollectAll[string](ctx, svc.fetch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, svc.tokens)
}

func TestPaginateEarlyBreak(t *testing.T) {
	svc := threePages()
	for item, err := range Paginate[string](context.Background(), svc.fetch) {
		require.NoError(t, err)
		if item == "b" {
			break
		}
	}
	assert.Len(t, svc.tokens, 1)
}

func TestPages(t *testing.T) {
	svc := threePages()
	var sizes []int
	var more []bool
	for page, err := range Pages[string](context.Background(), svc.fetch) {
		require.NoError(t, err)
		sizes = append(sizes, len(page.Items()))
		more = append(more, HasMorePages[string](page))
	}
	assert.Equal(t, []int{2, 1, 2}, sizes)
	assert.Equal(t, []bool{true, true, false}, more)
}

func TestPaginateNilPage(t *testing.T) {
	tests := []struct {
		name  string
		pages map[string]*testPage
		want  []string
	}{
		{"first page", map[string]*testPage{"": nil}, nil},
		{"later page", map[string]*testPage{
			"":   {items: []string{"a"}, next: strPtr("t1")},
			"t1": nil,
		}, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{pages: tt.pages}
			var items []string
			var errs []error
			for item, err := range Paginate[string](context.Background(), svc.fetch) {
				if err != nil {
					errs = append(errs, err)
					continue
				}
				items = append(items, item)
			}
			assert.Equal(t, tt.want, items)
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], ErrNilPage)
		})
	}

	var none *testPage
	assert.False(t, HasMorePages[string](none))
}
