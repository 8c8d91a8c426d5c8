package tenders

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/models"
)

// Directory lazily loads the reference dictionaries backing the category
// chips and the advanced-search pickers. Each list is fetched once per
// process; tender data churns, dictionary data does not.
type Directory struct {
	client api.Client

	mu          sync.Mutex
	categories  []models.Category
	authorities []models.ContractingAuthority
	noticeTypes []models.NoticeType
}

func NewDirectory(client api.Client) *Directory {
	return &Directory{client: client}
}

// Categories returns the category list sorted by name.
func (d *Directory) Categories(ctx context.Context) ([]models.Category, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.categories == nil {
		cats, err := d.client.Categories(ctx)
		if err != nil {
			return nil, err
		}
		sort.Slice(cats, func(i, j int) bool {
			return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
		})
		d.categories = cats
	}
	return d.categories, nil
}

// Authorities returns the contracting-authority list.
func (d *Directory) Authorities(ctx context.Context) ([]models.ContractingAuthority, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.authorities == nil {
		auths, err := d.client.ContractingAuthorities(ctx)
		if err != nil {
			return nil, err
		}
		d.authorities = auths
	}
	return d.authorities, nil
}

// NoticeTypes returns the notice-type list.
func (d *Directory) NoticeTypes(ctx context.Context) ([]models.NoticeType, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.noticeTypes == nil {
		nts, err := d.client.NoticeTypes(ctx)
		if err != nil {
			return nil, err
		}
		d.noticeTypes = nts
	}
	return d.noticeTypes, nil
}

// FilterCategories narrows a category list by case-insensitive substring
// match on the name, the way the chip search box does.
func FilterCategories(cats []models.Category, query string) []models.Category {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return cats
	}
	out := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	return out
}
