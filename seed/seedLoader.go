package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rishijha390/delhi-tandoori-momo/repository"
)

type Seeder struct {
	menu    repository.MenuRepository
	reviews repository.ReviewRepository
	log     *logrus.Logger
}

func NewSeeder(menu repository.MenuRepository, reviews repository.ReviewRepository, log *logrus.Logger) *Seeder {
	return &Seeder{menu: menu, reviews: reviews, log: log}
}

// SeedIfEmpty populates the catalogue and launch reviews when the menu
// collection is empty. A non-empty menu collection skips seeding entirely;
// the check is by count, not content.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	count, err := s.menu.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting menu items: %w", err)
	}
	if count > 0 {
		s.log.WithField("menu_items", count).Info("Database already seeded, skipping")
		return nil
	}

	if err := s.menu.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing menu items: %w", err)
	}
	if err := s.reviews.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing reviews: %w", err)
	}

	items := MenuItems()
	if err := s.menu.InsertMany(ctx, items); err != nil {
		return fmt.Errorf("seeding menu items: %w", err)
	}

	launchReviews := Reviews()
	if err := s.reviews.InsertMany(ctx, launchReviews); err != nil {
		return fmt.Errorf("seeding reviews: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"menu_items": len(items),
		"reviews":    len(launchReviews),
	}).Info("Database seeding completed")
	return nil
}
