// Package mockdata holds the demo catalog and homepage layout that keep the
// storefront usable when the database or the API is unreachable, and that
// the seeder writes into a fresh database.
package mockdata

import (
	"embed"
	"fmt"
	"sort"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

func load[T any](name string) ([]T, error) {
	raw, err := files.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var out []T
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// Products returns a fresh copy of the demo catalog.
func Products() ([]models.Product, error) {
	return load[models.Product]("products.yaml")
}

// Sections returns the demo homepage sections ordered by their order field.
func Sections() ([]models.HomepageSection, error) {
	sections, err := load[models.HomepageSection]("sections.yaml")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	return sections, nil
}

func Banners() ([]models.Banner, error) {
	return load[models.Banner]("banners.yaml")
}

func Promotions() ([]models.Promotion, error) {
	return load[models.Promotion]("promotions.yaml")
}

// Must panics on a decode error. The files are embedded, so an error is a
// build defect rather than a runtime condition.
func Must[T any](v []T, err error) []T {
	if err != nil {
		panic(err)
	}
	return v
}
