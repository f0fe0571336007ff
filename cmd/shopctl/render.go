package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fallbackNote(w io.Writer, fallback bool) {
	if fallback {
		fmt.Fprintln(w, warnStyle.Render("⚠️  API unavailable, showing demo data"))
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderListing(w io.Writer, l store.Listing) error {
	if asJSON {
		return writeJSON(w, l)
	}
	fallbackNote(w, l.Fallback)

	t := newTable("Name", "Brand", "Category", "Price", "Rating", "Stock")
	for _, p := range l.Products {
		price := formatPrice(p.Price)
		if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
			price = formatPrice(*p.DiscountPrice) + " " + mutedStyle.Render("("+price+")")
		}
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		t.Row(p.Name, p.Brand, p.Category, price, strconv.FormatFloat(p.Rating, 'f', 1, 64), stock)
	}
	fmt.Fprintln(w, t.String())
	if l.Meta != nil {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d of %d, %d products", l.Meta.Page, l.Meta.TotalPages, l.Meta.Total)))
	}
	return nil
}

// facetLine renders options as "Label (n), Label (n)".
func facetLine(opts []filtering.FacetOption) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, fmt.Sprintf("%s (%d)", o.Label, o.Count))
	}
	return strings.Join(parts, ", ")
}

func renderFacets(w io.Writer, s filtering.Summary, fallback bool) error {
	if asJSON {
		return writeJSON(w, s)
	}
	fallbackNote(w, fallback)

	t := newTable("Facet", "Options")
	add := func(name string, opts []filtering.FacetOption) {
		if len(opts) > 0 {
			t.Row(name, facetLine(opts))
		}
	}
	add("Brand", s.Brands)
	add("Category", s.Categories)
	add("Storage", s.Storage)
	add("RAM", s.RAM)
	add("Color", s.Colors)

	keys := make([]string, 0, len(s.Attributes))
	for k := range s.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		add(k, s.Attributes[k])
	}
	t.Row("Price", formatPrice(s.PriceRange.Min)+" - "+formatPrice(s.PriceRange.Max))
	t.Row("Availability", fmt.Sprintf("%d in stock, %d out of stock", s.Availability.InStock, s.Availability.OutOfStock))

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d products", s.Total)))
	fmt.Fprintln(w, t.String())
	return nil
}

func renderSections(w io.Writer, sections []models.HomepageSection, fallback bool) error {
	if asJSON {
		return writeJSON(w, sections)
	}
	fallbackNote(w, fallback)

	t := newTable("#", "Title", "Type", "Enabled", "ID")
	for _, s := range sections {
		enabled := "yes"
		if !s.Enabled {
			enabled = "no"
		}
		t.Row(strconv.Itoa(s.Order), s.Title, s.Type, enabled, s.ID.String())
	}
	fmt.Fprintln(w, t.String())
	return nil
}

// noticeFilter hides dismissed promotions.
type noticeFilter interface {
	IsDismissed(id string) bool
}

func renderHome(w io.Writer, home models.HomepageResponse, notices noticeFilter, fallback bool) error {
	promos := make([]models.Promotion, 0, len(home.Promotions))
	for _, p := range home.Promotions {
		if !notices.IsDismissed(p.Code) {
			promos = append(promos, p)
		}
	}
	home.Promotions = promos

	if asJSON {
		return writeJSON(w, home)
	}
	fallbackNote(w, fallback)

	for _, p := range home.Promotions {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("🏷  %s: %d%% off with %s", p.Title, p.DiscountPercent, p.Code)))
	}

	fmt.Fprintln(w, titleStyle.Render("Sections"))
	for _, s := range home.Sections {
		fmt.Fprintf(w, "%d. %s %s\n", s.Order, s.Title, mutedStyle.Render("["+s.Type+"]"))
	}

	if len(home.Banners) > 0 {
		fmt.Fprintln(w, titleStyle.Render("Banners"))
		for _, b := range home.Banners {
			fmt.Fprintf(w, "- %s %s\n", b.Title, mutedStyle.Render(b.LinkURL))
		}
	}
	return nil
}
