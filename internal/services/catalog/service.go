// Package catalog serves the wardrobe, outfit, shopping and style report
// screens from built-in sample data.
package catalog

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/random"
	"github.com/blackpdx/ggokka-ot/internal/model"
)

var wardrobeCategories = []model.WardrobeCategory{
	model.CategoryAll,
	model.CategoryTops,
	model.CategoryBottoms,
	model.CategoryOuterwear,
	model.CategoryShoes,
	model.CategoryAccessories,
}

var occasions = []model.Occasion{
	model.OccasionDaily,
	model.OccasionWork,
	model.OccasionDate,
	model.OccasionParty,
	model.OccasionCasual,
	model.OccasionFormal,
}

var periods = []model.Period{
	model.PeriodWeek,
	model.PeriodMonth,
	model.PeriodSeason,
	model.PeriodYear,
}

var shoppingCategories = []model.ShoppingCategory{
	model.ShoppingRecommended,
	model.ShoppingTrending,
	model.ShoppingMissing,
	model.ShoppingSeasonal,
}

// Service answers catalog queries
type Service struct {
	random random.Random
}

// New creates a catalog service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// WardrobeCategories returns the selectable wardrobe filters, "all" first
func (s *Service) WardrobeCategories() []model.WardrobeCategory {
	return slices.Clone(wardrobeCategories)
}

// Wardrobe returns the items in category whose name, brand, color or tags
// contain query, case-insensitively. An empty category means all.
func (s *Service) Wardrobe(category model.WardrobeCategory, query string) ([]model.WardrobeItem, error) {
	if category == "" {
		category = model.CategoryAll
	}
	if !slices.Contains(wardrobeCategories, category) {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	items := []model.WardrobeItem{}
	for _, item := range wardrobeItems {
		if category != model.CategoryAll && item.Category != category {
			continue
		}
		if q != "" && !matchesItem(item, q) {
			continue
		}
		items = append(items, cloneItem(item))
	}
	return items, nil
}

func matchesItem(item model.WardrobeItem, q string) bool {
	fields := append([]string{item.Name, item.Brand, item.Color}, item.Tags...)
	return slices.ContainsFunc(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), q)
	})
}

// WardrobeStats summarises the whole wardrobe
func (s *Service) WardrobeStats() model.WardrobeStats {
	stats := model.WardrobeStats{Total: len(wardrobeItems)}
	worn := 0
	for _, item := range wardrobeItems {
		if item.Loved {
			stats.LovedCount++
		}
		worn += item.WornCount
	}
	if stats.Total > 0 {
		stats.AverageWorn = math.Round(float64(worn)/float64(stats.Total)*10) / 10
	}
	return stats
}

// CategoryCounts returns the number of items per category, "all" first
func (s *Service) CategoryCounts() []model.CategoryCount {
	counts := make([]model.CategoryCount, 0, len(wardrobeCategories))
	for _, c := range wardrobeCategories {
		n := 0
		for _, item := range wardrobeItems {
			if c == model.CategoryAll || item.Category == c {
				n++
			}
		}
		counts = append(counts, model.CategoryCount{Category: c, Count: n})
	}
	return counts
}

// Occasions returns the occasions outfits are recommended for
func (s *Service) Occasions() []model.Occasion {
	return slices.Clone(occasions)
}

// DailyOutfits returns the recommendations for an occasion. An empty
// occasion means daily.
func (s *Service) DailyOutfits(occasion model.Occasion) ([]model.Outfit, error) {
	if occasion == "" {
		occasion = model.OccasionDaily
	}
	recs, ok := outfits[occasion]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownOccasion, occasion)
	}
	out := make([]model.Outfit, len(recs))
	for i, rec := range recs {
		rec.Occasion = occasion
		rec.Items = slices.Clone(rec.Items)
		out[i] = rec
	}
	return out, nil
}

// Shuffle returns the outfits in a new random order
func (s *Service) Shuffle(recs []model.Outfit) []model.Outfit {
	out := slices.Clone(recs)
	s.random.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// AverageScore returns the rounded mean match score
func AverageScore(recs []model.Outfit) int {
	if len(recs) == 0 {
		return 0
	}
	total := 0
	for _, r := range recs {
		total += r.Score
	}
	return int(math.Round(float64(total) / float64(len(recs))))
}

// TodayCuration returns today's curated outfits
func (s *Service) TodayCuration() []model.CuratedOutfit {
	return slices.Clone(curatedOutfits)
}

// Periods returns the selectable style report periods
func (s *Service) Periods() []model.Period {
	return slices.Clone(periods)
}

// StyleReport returns the style report for a period. An empty period means week.
func (s *Service) StyleReport(period model.Period) (model.StyleReport, error) {
	if period == "" {
		period = model.PeriodWeek
	}
	if !slices.Contains(periods, period) {
		return model.StyleReport{}, fmt.Errorf("%w: %q", model.ErrUnknownPeriod, period)
	}
	report := styleReport
	report.Period = period
	report.Colors = slices.Clone(styleReport.Colors)
	report.Styles = slices.Clone(styleReport.Styles)
	report.Weekly = slices.Clone(styleReport.Weekly)
	report.Insights = slices.Clone(styleReport.Insights)
	return report, nil
}

// ShoppingCategories returns the shopping lists
func (s *Service) ShoppingCategories() []model.ShoppingCategory {
	return slices.Clone(shoppingCategories)
}

// Shopping returns the products in a list within a price range, best match first
func (s *Service) Shopping(category model.ShoppingCategory, price model.PriceRange) ([]model.Product, error) {
	if category == "" {
		category = model.ShoppingRecommended
	}
	if !slices.Contains(shoppingCategories, category) {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	inRange, err := priceFilter(price)
	if err != nil {
		return nil, err
	}

	out := []model.Product{}
	for _, p := range products {
		if !slices.Contains(p.Categories, category) || !inRange(p.Price) {
			continue
		}
		p.Tags = slices.Clone(p.Tags)
		p.Categories = slices.Clone(p.Categories)
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b model.Product) int { return b.MatchScore - a.MatchScore })
	return out, nil
}

func priceFilter(r model.PriceRange) (func(int) bool, error) {
	switch r {
	case "", model.PriceAll:
		return func(int) bool { return true }, nil
	case model.PriceUnder50:
		return func(p int) bool { return p < 50000 }, nil
	case model.Price50To100:
		return func(p int) bool { return p >= 50000 && p < 100000 }, nil
	case model.Price100To200:
		return func(p int) bool { return p >= 100000 && p < 200000 }, nil
	case model.PriceOver200:
		return func(p int) bool { return p >= 200000 }, nil
	default:
		return nil, fmt.Errorf("%w: price range %q", model.ErrUnknownCategory, r)
	}
}

// StylePreferences returns every style offered on profile setup
func (s *Service) StylePreferences() []model.StylePreference {
	return slices.Clone(stylePreferences)
}

// StyleNames returns the names of StylePreferences
func (s *Service) StyleNames() []string {
	names := make([]string, len(stylePreferences))
	for i, p := range stylePreferences {
		names[i] = p.Name
	}
	return names
}

// AgeGroups returns the selectable age groups
func (s *Service) AgeGroups() []int {
	return model.AgeGroups()
}

// SkinTones returns the selectable skin tones
func (s *Service) SkinTones() []model.SkinTone {
	return slices.Clone(skinTones)
}

func cloneItem(item model.WardrobeItem) model.WardrobeItem {
	item.Tags = slices.Clone(item.Tags)
	return item
}
