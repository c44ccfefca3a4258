package site

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/model"
)

// RevalidateInterval is how long a rendered detail page stays fresh before
// it becomes eligible for regeneration from the database.
const RevalidateInterval = 18000 * time.Second

// DetailProps is everything the detail page needs to render. Terms is nil
// when the analysis pipeline has not produced a row yet or its fetch failed;
// the page still renders.
type DetailProps struct {
	Website    model.Website
	Terms      *model.TermsOfService
	Revalidate time.Duration
}

// ResolveDetail resolves the props for one detail-page slug. The second
// return value is false when the page should render its not-found state: an
// empty slug, a missing website row, or a website fetch failure. A terms
// fetch failure is tolerated and leaves Terms nil.
func ResolveDetail(ctx context.Context, st Store, log *zap.Logger, slug string) (DetailProps, bool) {
	if slug == "" {
		log.Debug("detail resolution without slug")
		return DetailProps{}, false
	}

	website, err := st.WebsiteBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Debug("website not found", zap.String("slug", slug))
		} else {
			log.Warn("website fetch failed", zap.String("slug", slug), zap.Error(err))
		}
		return DetailProps{}, false
	}
	log.Debug("website fetched", zap.String("slug", slug), zap.Int64("id", website.ID))

	props := DetailProps{
		Website:    *website,
		Revalidate: RevalidateInterval,
	}

	terms, err := st.TermsByWebsiteID(ctx, website.ID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		log.Debug("no terms row for website", zap.Int64("website_id", website.ID))
	case err != nil:
		// Missing analysis data does not invalidate the page.
		log.Warn("terms fetch failed", zap.Int64("website_id", website.ID), zap.Error(err))
	default:
		props.Terms = terms
	}

	return props, true
}
