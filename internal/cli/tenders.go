package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/utender/utender-cli/internal/models"
	"github.com/utender/utender-cli/internal/tenders"
)

// drainResults empties the result channel so await only sees results
// produced after the current command's mutation.
func (a *App) drainResults() {
	for {
		select {
		case <-a.results:
		default:
			return
		}
	}
}

// await blocks until the browser publishes a terminal (non-pending) result
// or the timeout passes, and returns the latest known result.
func (a *App) await(timeout time.Duration) tenders.Result {
	t := time.NewTimer(timeout)
	defer t.Stop()
	for {
		select {
		case r := <-a.results:
			if r.Status != tenders.StatusPending {
				return r
			}
		case <-t.C:
			return a.browser.Result()
		}
	}
}

func formatDate(epoch int64) string {
	if epoch == 0 {
		return "-"
	}
	return time.Unix(epoch, 0).Format("2006-01-02")
}

// renderResult prints the tender table plus a pagination footer.
func (a *App) renderResult(r tenders.Result) {
	switch r.Status {
	case tenders.StatusError:
		fmt.Fprintln(a.out, "Could not load tenders:", r.Err)
		return
	case tenders.StatusIdle, tenders.StatusPending:
		fmt.Fprintln(a.out, "No results yet; try 'list'.")
		return
	}

	if len(r.Tenders) == 0 {
		fmt.Fprintln(a.out, "No tenders match the current query.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUBLISHED\tEXPIRES\tCATEGORY\tTITLE")
	for _, t := range r.Tenders {
		title := t.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, formatDate(t.PublicationDate), formatDate(t.ExpiryDate), t.CategoryName, title)
	}
	w.Flush()

	p := r.Pagination
	fmt.Fprintf(a.out, "page %d/%d — %d tenders\n", p.Page, p.TotalPages, p.Total)
}

// List fetches and renders the current query, bypassing the key check so a
// repeated 'list' always shows fresh data.
func (a *App) List(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	a.drainResults()
	a.browser.Refresh()
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// Search sets the search text; the fetch fires once the debounce interval
// has passed without further input.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	a.drainResults()
	a.browser.SetSearch(term)
	a.renderResult(a.await(a.cfg.SearchDebounce + a.cfg.RequestTimeout))
	return nil
}

// Sort toggles the sort column: pub(lication) or exp(iry) date.
func (a *App) Sort(ctx context.Context, field string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	var sf models.SortField
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "pub", "publication", "publication_date":
		sf = models.SortByPublicationDate
	case "exp", "expiry", "expiry_date":
		sf = models.SortByExpiryDate
	default:
		fmt.Fprintln(a.out, "Usage: sort pub|exp")
		return nil
	}
	a.drainResults()
	a.browser.ToggleSort(sf)
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// Category toggles the category filter by id; repeating the same id clears
// it.
func (a *App) Category(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "Usage: cat <category id> (see 'categories')")
		return nil
	}
	a.drainResults()
	a.browser.ToggleCategory(id)
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// Categories lists the category chips, optionally narrowed by a search
// string.
func (a *App) Categories(ctx context.Context, query string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	cats, err := a.dir.Categories(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load categories:", err)
		return err
	}
	for _, c := range tenders.FilterCategories(cats, query) {
		fmt.Fprintf(a.out, "%4d  %s\n", c.ID, c.Name)
	}
	return nil
}

// Filters runs the advanced-search prompts and applies the result in one
// step. Empty answers leave a field unset.
func (a *App) Filters(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	var f tenders.Filters

	if s, err := getSimpleText(a.reader, "Contracting authority id (empty to skip)", a.out); err != nil {
		return err
	} else if s != "" {
		if id, err := strconv.Atoi(s); err == nil {
			f.ContractingAuthorityID = id
		}
	}
	if s, err := getSimpleText(a.reader, "Notice type id (empty to skip)", a.out); err != nil {
		return err
	} else if s != "" {
		if id, err := strconv.Atoi(s); err == nil {
			f.NoticeTypeID = id
		}
	}
	if s, err := getSimpleText(a.reader, "Published from, YYYY-MM-DD (empty to skip)", a.out); err != nil {
		return err
	} else if s != "" {
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			f.FromDate = ts.Unix()
		}
	}
	if s, err := getSimpleText(a.reader, "Published to, YYYY-MM-DD (empty to skip)", a.out); err != nil {
		return err
	} else if s != "" {
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			f.ToDate = ts.Unix()
		}
	}

	a.drainResults()
	a.browser.SetFilters(f)
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// ClearFilters drops the advanced filters.
func (a *App) ClearFilters(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	a.drainResults()
	a.browser.ClearFilters()
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// Page jumps to a page number.
func (a *App) Page(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Fprintln(a.out, "Usage: page <number>")
		return nil
	}
	a.drainResults()
	a.browser.SetPage(n)
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

func (a *App) NextPage(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	a.drainResults()
	a.browser.NextPage()
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

func (a *App) PrevPage(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	a.drainResults()
	a.browser.PrevPage()
	a.renderResult(a.await(a.cfg.RequestTimeout))
	return nil
}

// Show prints the detail view of one tender.
func (a *App) Show(ctx context.Context, arg string) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		fmt.Fprintln(a.out, "Usage: show <tender id>")
		return nil
	}
	t, err := a.client.Tender(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load tender:", err)
		return err
	}
	fmt.Fprintln(a.out, t.Title)
	if t.ProcurementNumber != "" {
		fmt.Fprintln(a.out, "Procurement no:", t.ProcurementNumber)
	}
	fmt.Fprintln(a.out, "Published:", formatDate(t.PublicationDate), " Expires:", formatDate(t.ExpiryDate))
	if t.ContractingAuthorityName != "" {
		fmt.Fprintln(a.out, "Authority:", t.ContractingAuthorityName)
	}
	if t.CategoryName != "" {
		fmt.Fprintln(a.out, "Category:", t.CategoryName)
	}
	if t.NoticeTypeName != "" {
		fmt.Fprintln(a.out, "Notice type:", t.NoticeTypeName)
	}
	if t.Description != "" {
		fmt.Fprintln(a.out, "\n"+t.Description)
	}
	return nil
}

// Stats prints the running tender count for the current month.
func (a *App) Stats(ctx context.Context) error {
	now := time.Now()
	stats, err := a.client.MonthlyStats(ctx, int(now.Month()), now.Year())
	if err != nil {
		fmt.Fprintln(a.out, "Could not load stats:", err)
		return err
	}
	fmt.Fprintf(a.out, "%s %d: %d tenders published\n", stats.Month, stats.Year, stats.Count)
	return nil
}
