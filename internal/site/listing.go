package site

import (
	"sort"

	"github.com/plainterms/plainterms/internal/model"
)

// Uncategorized is the listing section for websites without a category
// label. It always sorts last.
const Uncategorized = "Other"

// Card is one link card on the listing grid.
type Card struct {
	Slug        string
	Title       string
	Description string
	LogoSVG     string
}

// CategoryGroup is one listing section: a category label and its cards.
type CategoryGroup struct {
	Category string
	Cards    []Card
}

// GroupByCategory shapes websites into listing sections. Categories are
// sorted alphabetically with Uncategorized last; cards keep the order the
// store returned. Websites whose name trims to an empty slug are not
// routable and are dropped.
func GroupByCategory(sites []model.Website) []CategoryGroup {
	byCategory := make(map[string][]Card)
	for _, w := range sites {
		slug := w.Slug()
		if slug == "" {
			continue
		}
		category := Uncategorized
		if w.Category != nil && *w.Category != "" {
			category = *w.Category
		}
		byCategory[category] = append(byCategory[category], Card{
			Slug:        slug,
			Title:       w.SiteName,
			Description: w.Description,
			LogoSVG:     w.LogoSVG,
		})
	}

	labels := make([]string, 0, len(byCategory))
	for label := range byCategory {
		if label != Uncategorized {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	if _, ok := byCategory[Uncategorized]; ok {
		labels = append(labels, Uncategorized)
	}

	groups := make([]CategoryGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, CategoryGroup{Category: label, Cards: byCategory[label]})
	}
	return groups
}
