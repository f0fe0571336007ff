package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/store"
	"github.com/spf13/cobra"
)

// listingFlags mirrors the listing query parameters of the API.
type listingFlags struct {
	category   string
	search     string
	sortBy     string
	brands     []string
	categories []string
	storage    []string
	ram        []string
	colors     []string
	attrs      []string
	minPrice   string
	maxPrice   string
	rating     int
	inStock    bool
	outOfStock bool
	discount   int
	page       int
	limit      int
}

var listing listingFlags

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products matching the given filters",
	Example: `  shopctl products --category mobiles --brand Acme --sort price-low
  shopctl products --attr ram:8GB --min-price 10000 --in-stock`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show the filter sidebar of a category",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func init() {
	f := productsCmd.Flags()
	f.StringVar(&listing.category, "category", "", "category page to list (e.g. smart-watches)")
	f.StringVarP(&listing.search, "search", "q", "", "name search")
	f.StringVar(&listing.sortBy, "sort", string(filtering.SortPopularity), "popularity, price-low, price-high or rating")
	f.StringSliceVar(&listing.brands, "brand", nil, "brands to include")
	f.StringSliceVar(&listing.categories, "categories", nil, "categories to include on the all-products page")
	f.StringSliceVar(&listing.storage, "storage", nil, "storage sizes to include")
	f.StringSliceVar(&listing.ram, "ram", nil, "RAM sizes to include")
	f.StringSliceVar(&listing.colors, "color", nil, "colors to include")
	f.StringSliceVar(&listing.attrs, "attr", nil, "attribute selections as key:value")
	f.StringVar(&listing.minPrice, "min-price", "", "lowest effective price")
	f.StringVar(&listing.maxPrice, "max-price", "", "highest effective price")
	f.IntVar(&listing.rating, "rating", 0, "minimum star rating (1-5)")
	f.BoolVar(&listing.inStock, "in-stock", false, "only products in stock")
	f.BoolVar(&listing.outOfStock, "out-of-stock", false, "only products out of stock")
	f.IntVar(&listing.discount, "discount", 0, "minimum discount percent")
	f.IntVar(&listing.page, "page", 1, "page number")
	f.IntVar(&listing.limit, "limit", 12, "page size")

	facetsCmd.Flags().StringVar(&listing.category, "category", "", "category to summarize")
}

// values encodes the flags with the same parameter names the API reads, so
// parsing and validation are shared with the server.
func (l listingFlags) values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			v.Set(key, value)
		}
	}
	set(filtering.ParamCategory, l.category)
	set(filtering.ParamSearch, l.search)
	set(filtering.ParamSortBy, l.sortBy)
	set(filtering.ParamMinPrice, l.minPrice)
	set(filtering.ParamMaxPrice, l.maxPrice)
	for key, list := range map[string][]string{
		filtering.ParamBrand:      l.brands,
		filtering.ParamCategories: l.categories,
		filtering.ParamStorage:    l.storage,
		filtering.ParamRAM:        l.ram,
		filtering.ParamColor:      l.colors,
		filtering.ParamAttribute:  l.attrs,
	} {
		for _, item := range list {
			v.Add(key, item)
		}
	}
	if l.rating > 0 {
		v.Set(filtering.ParamRating, strconv.Itoa(l.rating))
	}
	if l.inStock {
		v.Set(filtering.ParamInStock, "true")
	}
	if l.outOfStock {
		v.Set(filtering.ParamOutOfStock, "true")
	}
	if l.discount > 0 {
		v.Set(filtering.ParamDiscount, strconv.Itoa(l.discount))
	}
	return v
}

func runProducts(cmd *cobra.Command, args []string) error {
	state, query, err := filtering.ParseValues(listing.values())
	if err != nil {
		return err
	}

	fs := store.NewFilterStore(newClient(), query.FixedCategory, logger)
	defer fs.Close()

	fs.Update(func(s *filtering.State) { *s = state })
	fs.SetSearch(query.Search)
	fs.SetSort(query.SortBy)
	fs.SetPage(listing.page, listing.limit)

	if err := fs.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	return renderListing(cmd.OutOrStdout(), fs.Listing())
}

func runFacets(cmd *cobra.Command, args []string) error {
	res, err := newClient().Facets(cmd.Context(), listing.category)
	if err != nil {
		return fmt.Errorf("load facets: %w", err)
	}
	return renderFacets(cmd.OutOrStdout(), res.Data, res.Fallback)
}
