package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// Wardrobe tests

func (s *ServiceSuite) TestWardrobeAll() {
	items, err := s.service.Wardrobe(model.CategoryAll, "")
	s.Require().NoError(err)
	s.Len(items, 5)
}

func (s *ServiceSuite) TestWardrobeByCategory() {
	items, err := s.service.Wardrobe(model.CategoryShoes, "")
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("러닝 스니커즈", items[0].Name)
}

func (s *ServiceSuite) TestWardrobeQueryMatchesNameBrandAndTags() {
	byName, _ := s.service.Wardrobe("", "셔츠")
	s.Len(byName, 1)

	byBrand, _ := s.service.Wardrobe("", "NIKE")
	s.Require().Len(byBrand, 1)
	s.Equal(4, byBrand[0].ID)

	byTag, _ := s.service.Wardrobe("", "미니멀")
	s.Len(byTag, 3)

	combined, _ := s.service.Wardrobe(model.CategoryTops, "미니멀")
	s.Len(combined, 1)

	none, _ := s.service.Wardrobe("", "없는아이템")
	s.Empty(none)
}

func (s *ServiceSuite) TestWardrobeUnknownCategory() {
	_, err := s.service.Wardrobe("hats", "")
	s.ErrorIs(err, model.ErrUnknownCategory)
}

func (s *ServiceSuite) TestWardrobeReturnsCopies() {
	items, _ := s.service.Wardrobe(model.CategoryTops, "")
	items[0].Tags[0] = "changed"

	again, _ := s.service.Wardrobe(model.CategoryTops, "")
	s.Equal("미니멀", again[0].Tags[0])
}

func (s *ServiceSuite) TestWardrobeStats() {
	stats := s.service.WardrobeStats()
	s.Equal(5, stats.Total)
	s.Equal(2, stats.LovedCount)
	s.InDelta(17.6, stats.AverageWorn, 0.001)
}

func (s *ServiceSuite) TestCategoryCounts() {
	counts := s.service.CategoryCounts()
	s.Require().Len(counts, 6)
	s.Equal(model.CategoryCount{Category: model.CategoryAll, Count: 5}, counts[0])
	for _, c := range counts[1:] {
		s.Equal(1, c.Count, c.Category)
	}
}

// Outfit tests

func (s *ServiceSuite) TestDailyOutfitsPerOccasion() {
	for _, o := range s.service.Occasions() {
		recs, err := s.service.DailyOutfits(o)
		s.Require().NoError(err)
		s.Len(recs, 2)
		for _, r := range recs {
			s.Equal(o, r.Occasion)
		}
	}
}

func (s *ServiceSuite) TestDailyOutfitsDefaultsToDaily() {
	recs, err := s.service.DailyOutfits("")
	s.Require().NoError(err)
	s.Equal("스프링 캐주얼", recs[0].Title)
}

func (s *ServiceSuite) TestDailyOutfitsUnknownOccasion() {
	_, err := s.service.DailyOutfits("wedding")
	s.ErrorIs(err, model.ErrUnknownOccasion)
}

func (s *ServiceSuite) TestAverageScore() {
	recs, _ := s.service.DailyOutfits(model.OccasionWork)
	s.Equal(94, AverageScore(recs)) // (96+91)/2 = 93.5
	s.Equal(0, AverageScore(nil))
}

func (s *ServiceSuite) TestShuffleUsesRandom() {
	recs, _ := s.service.DailyOutfits(model.OccasionDaily)
	s.random.QueueIntn(0)

	shuffled := s.service.Shuffle(recs)

	s.Equal(recs[1].ID, shuffled[0].ID)
	s.Equal(recs[0].ID, shuffled[1].ID)
	s.Equal(1, recs[0].ID, "input left untouched")
}

func (s *ServiceSuite) TestShuffleIdentity() {
	recs, _ := s.service.DailyOutfits(model.OccasionDaily)
	s.random.QueueIntn(1)

	shuffled := s.service.Shuffle(recs)

	s.Equal(recs, shuffled)
}

func (s *ServiceSuite) TestTodayCuration() {
	curated := s.service.TodayCuration()
	s.Len(curated, 3)
	s.Equal(203, curated[2].Likes)
}

// Style report tests

func (s *ServiceSuite) TestStyleReport() {
	for _, p := range s.service.Periods() {
		report, err := s.service.StyleReport(p)
		s.Require().NoError(err)
		s.Equal(p, report.Period)

		total := 0
		for _, c := range report.Colors {
			total += c.Percentage
		}
		s.Equal(100, total)
	}
}

func (s *ServiceSuite) TestStyleReportUnknownPeriod() {
	_, err := s.service.StyleReport("decade")
	s.ErrorIs(err, model.ErrUnknownPeriod)
}

// Shopping tests

func (s *ServiceSuite) TestShoppingRecommendedSortedByMatch() {
	products, err := s.service.Shopping(model.ShoppingRecommended, model.PriceAll)
	s.Require().NoError(err)
	s.Require().Len(products, 4)
	for i := 1; i < len(products); i++ {
		s.GreaterOrEqual(products[i-1].MatchScore, products[i].MatchScore)
	}
}

func (s *ServiceSuite) TestShoppingPriceRange() {
	products, err := s.service.Shopping(model.ShoppingRecommended, model.Price100To200)
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("코튼 화이트 셔츠", products[0].Name)

	cheap, err := s.service.Shopping(model.ShoppingRecommended, model.PriceUnder50)
	s.Require().NoError(err)
	s.Empty(cheap)
}

func (s *ServiceSuite) TestShoppingCategory() {
	products, err := s.service.Shopping(model.ShoppingSeasonal, "")
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("Burberry", products[0].Brand)
}

func (s *ServiceSuite) TestShoppingUnknownFilters() {
	_, err := s.service.Shopping("clearance", "")
	s.ErrorIs(err, model.ErrUnknownCategory)

	_, err = s.service.Shopping("", "free")
	s.ErrorIs(err, model.ErrUnknownCategory)
}

// Preference tests

func (s *ServiceSuite) TestStylePreferences() {
	s.Len(s.service.StylePreferences(), 10)
	s.Contains(s.service.StyleNames(), "빈티지")
	s.Len(s.service.SkinTones(), 6)
}
