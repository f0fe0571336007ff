package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
)

const sectionsPath = "/admin/homepage-sections"

// Home fetches the storefront homepage.
func (c *Client) Home(ctx context.Context) (Result[models.HomepageResponse], error) {
	const path = "/store/home"
	res, err := do[models.HomepageResponse](ctx, c, http.MethodGet, path, nil, nil)
	if err == nil || !c.shouldFallback(ctx, err) {
		return res, err
	}

	c.logFallback(path, err)
	home, mockErr := demoHomepage(time.Now())
	if mockErr != nil {
		return res, fmt.Errorf("%w (demo data: %v)", err, mockErr)
	}
	return Result[models.HomepageResponse]{Data: home, Fallback: true}, nil
}

// Sections fetches every homepage section in display order.
func (c *Client) Sections(ctx context.Context) (Result[[]models.HomepageSection], error) {
	res, err := do[[]models.HomepageSection](ctx, c, http.MethodGet, sectionsPath, nil, nil)
	if err == nil || !c.shouldFallback(ctx, err) {
		return res, err
	}

	c.logFallback(sectionsPath, err)
	sections, mockErr := mockdata.Sections()
	if mockErr != nil {
		return res, fmt.Errorf("%w (demo data: %v)", err, mockErr)
	}
	return Result[[]models.HomepageSection]{Data: sections, Fallback: true}, nil
}

// ReorderSections saves the complete section order and returns the layout
// as the API stored it.
func (c *Client) ReorderSections(ctx context.Context, orders []models.SectionOrder) ([]models.HomepageSection, error) {
	res, err := do[[]models.HomepageSection](ctx, c, http.MethodPut, sectionsPath+"/reorder", nil,
		models.ReorderSectionsRequest{Sections: orders})
	return res.Data, err
}

func (c *Client) ToggleSection(ctx context.Context, id uuid.UUID) (models.HomepageSection, error) {
	res, err := do[models.HomepageSection](ctx, c, http.MethodPatch, sectionsPath+"/"+id.String()+"/toggle", nil, nil)
	return res.Data, err
}

func (c *Client) CreateSection(ctx context.Context, req models.HomepageSectionRequest) (models.HomepageSection, error) {
	res, err := do[models.HomepageSection](ctx, c, http.MethodPost, sectionsPath, nil, req)
	return res.Data, err
}

func (c *Client) DeleteSection(ctx context.Context, id uuid.UUID) error {
	_, err := do[any](ctx, c, http.MethodDelete, sectionsPath+"/"+id.String(), nil, nil)
	return err
}

func demoHomepage(now time.Time) (models.HomepageResponse, error) {
	sections, err := mockdata.Sections()
	if err != nil {
		return models.HomepageResponse{}, err
	}
	banners, err := mockdata.Banners()
	if err != nil {
		return models.HomepageResponse{}, err
	}
	promotions, err := mockdata.Promotions()
	if err != nil {
		return models.HomepageResponse{}, err
	}

	home := models.HomepageResponse{
		Sections:   []models.HomepageSection{},
		Banners:    []models.Banner{},
		Promotions: []models.Promotion{},
	}
	for _, s := range sections {
		if s.Enabled {
			home.Sections = append(home.Sections, s)
		}
	}
	for _, b := range banners {
		if b.Active {
			home.Banners = append(home.Banners, b)
		}
	}
	for _, p := range promotions {
		if p.LiveAt(now) {
			home.Promotions = append(home.Promotions, p)
		}
	}
	return home, nil
}
