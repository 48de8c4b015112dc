package services

import (
	"context"
	"errors"

	"github.com/JohnBalawejder/watcha/internal/omdb"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// lookupParallelism bounds the concurrent OMDb calls made while enriching a
// page of search results.
const lookupParallelism = 4

type CatalogService interface {
	SearchThumbnails(ctx context.Context, query string) ([]omdb.Metadata, error)
}

type catalogService struct {
	provider MetadataProvider
	logger   *logrus.Logger
}

func NewCatalogService(provider MetadataProvider, logger *logrus.Logger) CatalogService {
	return &catalogService{
		provider: provider,
		logger:   logger,
	}
}

// SearchThumbnails searches OMDb and enriches every hit with genre and year
// from the exact-title endpoint. The per-result lookups fan out concurrently
// with bounded parallelism; result order follows the search response. A hit
// whose detail lookup reports no match keeps its search-level fields with an
// unknown genre.
func (s *catalogService) SearchThumbnails(ctx context.Context, query string) ([]omdb.Metadata, error) {
	hits, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []omdb.Metadata{}, nil
	}

	thumbnails := make([]omdb.Metadata, len(hits))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupParallelism)

	for i, hit := range hits {
		i, hit := i, hit
		g.Go(func() error {
			meta, err := s.provider.Lookup(ctx, hit.Title)
			if err != nil {
				if errors.Is(err, omdb.ErrNotFound) {
					s.logger.WithField("title", hit.Title).Warn("Search hit missing from title endpoint")
					thumbnails[i] = omdb.Metadata{
						Title:       hit.Title,
						Genre:       "Unknown",
						Poster:      hit.Poster,
						ReleaseYear: hit.Year,
					}
					return nil
				}
				return err
			}
			thumbnails[i] = *meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return thumbnails, nil
}
