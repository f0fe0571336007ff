package services

import (
	"context"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"golang.org/x/sync/errgroup"
)

// HomeService assembles the storefront homepage.
type HomeService struct {
	sections   *SectionService
	banners    *BannerService
	promotions *PromotionService
}

func NewHomeService(sections *SectionService, banners *BannerService, promotions *PromotionService) *HomeService {
	return &HomeService{sections: sections, banners: banners, promotions: promotions}
}

// Homepage loads enabled sections, active banners and live promotions
// concurrently. The first failure cancels the other loads.
func (h *HomeService) Homepage(ctx context.Context) (models.HomepageResponse, error) {
	var resp models.HomepageResponse
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sections, err := h.sections.ListEnabled(ctx)
		resp.Sections = sections
		return err
	})
	g.Go(func() error {
		banners, err := h.banners.List(ctx, true)
		resp.Banners = banners
		return err
	})
	g.Go(func() error {
		promotions, err := h.promotions.ListLive(ctx)
		resp.Promotions = promotions
		return err
	})

	if err := g.Wait(); err != nil {
		return models.HomepageResponse{}, err
	}
	return resp, nil
}
