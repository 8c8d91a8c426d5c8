package tenders

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/logging"
	"github.com/utender/utender-cli/internal/models"
)

// Status is the lifecycle state of the current result slot.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusError
)

// Result is the outcome of the most recently issued descriptor. Results of
// superseded descriptors never land here; they are discarded by key
// comparison when their response arrives.
type Result struct {
	Key        string
	Tenders    []models.Tender
	Pagination models.Pagination
	Status     Status
	Err        error
}

// Options tunes a Browser. Zero values fall back to the view defaults.
type Options struct {
	// Limit is the fixed page size of the view.
	Limit int
	// SearchDebounce is the quiet interval before raw search text is
	// promoted to the active search term.
	SearchDebounce time.Duration
	// RequestTimeout bounds each list fetch.
	RequestTimeout time.Duration
}

const (
	defaultLimit          = 50
	defaultSearchDebounce = 500 * time.Millisecond
	defaultRequestTimeout = 15 * time.Second
)

// Browser is the list query builder and fetch coordinator. Inputs are set
// independently; every change deterministically derives a Query, and a
// fetch is issued only when the derived cache key actually changes.
//
// Concurrency: one mutex serializes all input mutations and result
// delivery. Fetches run in goroutines and re-enter through deliver, where
// the last-issued-key-wins rule drops stale responses.
type Browser struct {
	client   api.Client
	log      logging.Logger
	opts     Options
	debounce *debouncer

	mu        sync.Mutex
	rawSearch string
	search    string // active (promoted) search term
	category  int
	filters   Filters
	sortBy    models.SortField
	sortOrder models.SortOrder
	page      int

	lastKey string // key of the last-issued request
	result  Result
	subs    []func(Result)
}

func NewBrowser(client api.Client, log logging.Logger, opts Options) *Browser {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = defaultSearchDebounce
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	return &Browser{
		client:    client,
		log:       log,
		opts:      opts,
		debounce:  newDebouncer(opts.SearchDebounce),
		sortBy:    models.SortByPublicationDate,
		sortOrder: models.SortDesc,
		page:      1,
	}
}

// Query derives the current descriptor. Pure: it depends only on the latest
// value of each input, never on the order the inputs were set in.
func (b *Browser) Query() Query {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queryLocked()
}

func (b *Browser) queryLocked() Query {
	return Query{
		Page:       b.page,
		Limit:      b.opts.Limit,
		Search:     b.search,
		CategoryID: b.category,
		Filters:    b.filters,
		SortBy:     b.sortBy,
		SortOrder:  b.sortOrder,
	}
}

// Result returns the current result slot.
func (b *Browser) Result() Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result
}

// Subscribe registers fn to receive every subsequent result update.
func (b *Browser) Subscribe(fn func(Result)) {
	b.mu.Lock()
	b.subs = append(b.subs, fn)
	b.mu.Unlock()
}

// SetSearch records raw search text. The text is promoted to the active
// search term only after it has been stable for the debounce interval,
// bounding request volume under fast typing.
func (b *Browser) SetSearch(raw string) {
	b.mu.Lock()
	b.rawSearch = raw
	b.mu.Unlock()

	b.debounce.Trigger(func() {
		b.mu.Lock()
		promoted := strings.TrimSpace(b.rawSearch)
		if promoted == b.search {
			b.mu.Unlock()
			return
		}
		b.search = promoted
		b.page = 1
		b.refreshLocked()
	})
}

// SetFilters replaces the advanced filter set and resets to page 1.
func (b *Browser) SetFilters(f Filters) {
	b.mu.Lock()
	if b.filters == f {
		b.mu.Unlock()
		return
	}
	b.filters = f
	b.page = 1
	b.refreshLocked()
}

// ClearFilters drops all advanced filters.
func (b *Browser) ClearFilters() {
	b.SetFilters(Filters{})
}

// ToggleCategory selects the category chip, or clears the filter when the
// already-selected chip is clicked again.
func (b *Browser) ToggleCategory(id int) {
	b.mu.Lock()
	if b.category == id {
		b.category = 0
	} else {
		b.category = id
	}
	b.page = 1
	b.refreshLocked()
}

// ToggleSort applies the sort rule: re-clicking the active field flips the
// direction, a different field takes over with descending as the default.
// Either way the page resets to 1.
func (b *Browser) ToggleSort(field models.SortField) {
	b.mu.Lock()
	b.page = 1
	if b.sortBy == field {
		if b.sortOrder == models.SortAsc {
			b.sortOrder = models.SortDesc
		} else {
			b.sortOrder = models.SortAsc
		}
	} else {
		b.sortBy = field
		b.sortOrder = models.SortDesc
	}
	b.refreshLocked()
}

// SetPage moves to page n (1-based). Out-of-range values are clamped to 1.
func (b *Browser) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	b.mu.Lock()
	b.page = n
	b.refreshLocked()
}

// NextPage advances one page, bounded by the last known page count.
func (b *Browser) NextPage() {
	b.mu.Lock()
	if tp := b.result.Pagination.TotalPages; tp > 0 && b.page >= tp {
		b.mu.Unlock()
		return
	}
	b.page++
	b.refreshLocked()
}

// PrevPage goes back one page, stopping at page 1.
func (b *Browser) PrevPage() {
	b.mu.Lock()
	if b.page <= 1 {
		b.mu.Unlock()
		return
	}
	b.page--
	b.refreshLocked()
}

// Refresh forces a re-fetch of the current descriptor even when its key is
// unchanged. Tender data changes frequently, so there is no multi-entry
// cache to fall back on.
func (b *Browser) Refresh() {
	b.mu.Lock()
	b.lastKey = ""
	b.refreshLocked()
}

// Close stops the pending debounce timer, if any.
func (b *Browser) Close() {
	b.debounce.Stop()
}

// refreshLocked derives the descriptor, compares its key to the last-issued
// one, and issues a fetch only when the key changed. Must be called with
// b.mu held; it releases the lock.
func (b *Browser) refreshLocked() {
	q := b.queryLocked()
	key := q.Key()
	if key == b.lastKey {
		// Identical descriptor: no refetch, no duplicate in-flight request.
		b.mu.Unlock()
		return
	}
	b.lastKey = key
	b.result = Result{Key: key, Status: StatusPending}
	snap := b.result
	subs := b.subs
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}

	go b.fetch(q, key)
}

func (b *Browser) fetch(q Query, key string) {
	ctx, cancel := context.WithTimeout(context.Background(), b.opts.RequestTimeout)
	defer cancel()

	page, err := b.client.ListTenders(ctx, q.Values())
	b.deliver(ctx, key, page, err)
}

// deliver applies a fetch outcome to the result slot unless a newer
// descriptor has been issued in the meantime. Stale responses are dropped
// here by key comparison; the request itself was never cancelled.
func (b *Browser) deliver(ctx context.Context, key string, page *models.TendersPage, err error) {
	b.mu.Lock()
	if key != b.lastKey {
		b.mu.Unlock()
		b.log.Debug(ctx, "discarding stale tender response", "key", key)
		return
	}
	if err != nil {
		b.result = Result{Key: key, Status: StatusError, Err: err}
	} else {
		b.result = Result{
			Key:        key,
			Tenders:    page.Data,
			Pagination: page.Pagination,
			Status:     StatusSuccess,
		}
	}
	snap := b.result
	subs := b.subs
	b.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
