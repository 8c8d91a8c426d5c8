package tenders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/models"
)

type fakeRefAPI struct {
	api.Client

	mu             sync.Mutex
	categoryCalls  int
	authorityCalls int
	noticeCalls    int
	err            error
}

func (f *fakeRefAPI) Categories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	f.categoryCalls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return []models.Category{
		{ID: 1, Name: "Water supply"},
		{ID: 2, Name: "construction"},
		{ID: 3, Name: "Electrical works"},
	}, nil
}

func (f *fakeRefAPI) ContractingAuthorities(ctx context.Context) ([]models.ContractingAuthority, error) {
	f.mu.Lock()
	f.authorityCalls++
	f.mu.Unlock()
	return []models.ContractingAuthority{{ID: 1, Name: "Ministry of Transport"}}, nil
}

func (f *fakeRefAPI) NoticeTypes(ctx context.Context) ([]models.NoticeType, error) {
	f.mu.Lock()
	f.noticeCalls++
	f.mu.Unlock()
	return []models.NoticeType{{ID: 1, Name: "Open procedure"}}, nil
}

func TestDirectoryCachesEachListOnce(t *testing.T) {
	ctx := context.Background()
	f := &fakeRefAPI{}
	d := NewDirectory(f)

	for i := 0; i < 3; i++ {
		_, err := d.Categories(ctx)
		require.NoError(t, err)
		_, err = d.Authorities(ctx)
		require.NoError(t, err)
		_, err = d.NoticeTypes(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, f.categoryCalls)
	assert.Equal(t, 1, f.authorityCalls)
	assert.Equal(t, 1, f.noticeCalls)
}

func TestDirectorySortsCategoriesByName(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(&fakeRefAPI{})

	cats, err := d.Categories(ctx)
	require.NoError(t, err)

	// Case-insensitive name order.
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"construction", "Electrical works", "Water supply"}, names)
}

func TestDirectoryErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := &fakeRefAPI{err: errors.New("boom")}
	d := NewDirectory(f)

	_, err := d.Categories(ctx)
	require.Error(t, err)

	// A later call retries instead of serving the failure.
	f.err = nil
	cats, err := d.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)
	assert.Equal(t, 2, f.categoryCalls)
}

func TestFilterCategories(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Water supply"},
		{ID: 2, Name: "Road construction"},
		{ID: 3, Name: "Building construction"},
	}

	assert.Len(t, FilterCategories(cats, ""), 3)
	assert.Len(t, FilterCategories(cats, "  "), 3)

	got := FilterCategories(cats, "CONSTRUCTION")
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)

	assert.Empty(t, FilterCategories(cats, "demolition"))
}
