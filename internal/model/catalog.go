package model

// WardrobeCategory groups wardrobe items
type WardrobeCategory string

const (
	CategoryAll         WardrobeCategory = "all"
	CategoryTops        WardrobeCategory = "tops"
	CategoryBottoms     WardrobeCategory = "bottoms"
	CategoryOuterwear   WardrobeCategory = "outerwear"
	CategoryShoes       WardrobeCategory = "shoes"
	CategoryAccessories WardrobeCategory = "accessories"
)

// Label returns the display name of the category.
func (c WardrobeCategory) Label() string {
	switch c {
	case CategoryAll:
		return "전체"
	case CategoryTops:
		return "상의"
	case CategoryBottoms:
		return "하의"
	case CategoryOuterwear:
		return "아우터"
	case CategoryShoes:
		return "신발"
	case CategoryAccessories:
		return "악세서리"
	default:
		return string(c)
	}
}

// WardrobeItem is a piece of clothing in the user's wardrobe
type WardrobeItem struct {
	ID        int
	Name      string
	Brand     string
	Color     string
	Size      string
	Category  WardrobeCategory
	Loved     bool
	WornCount int
	LastWorn  string
	Price     int // won
	Tags      []string
}

// WardrobeStats summarises a wardrobe
type WardrobeStats struct {
	Total       int
	LovedCount  int
	AverageWorn float64 // rounded to one decimal
}

// CategoryCount is a category with the number of items in it
type CategoryCount struct {
	Category WardrobeCategory
	Count    int
}

// Occasion is what an outfit is meant for
type Occasion string

const (
	OccasionDaily  Occasion = "daily"
	OccasionWork   Occasion = "work"
	OccasionDate   Occasion = "date"
	OccasionParty  Occasion = "party"
	OccasionCasual Occasion = "casual"
	OccasionFormal Occasion = "formal"
)

// Label returns the display name of the occasion.
func (o Occasion) Label() string {
	switch o {
	case OccasionDaily:
		return "데일리"
	case OccasionWork:
		return "업무"
	case OccasionDate:
		return "데이트"
	case OccasionParty:
		return "파티"
	case OccasionCasual:
		return "캐주얼"
	case OccasionFormal:
		return "포멀"
	default:
		return string(o)
	}
}

// Outfit is a recommended combination of items
type Outfit struct {
	ID       int
	Title    string
	Occasion Occasion
	Items    []string
	Score    int // match score, 0-100
	Reason   string
}

// CuratedOutfit is an entry of today's curation
type CuratedOutfit struct {
	ID          int
	Title       string
	Description string
	Temperature string
	Occasion    string
	Likes       int
}

// ShoppingCategory selects a shopping recommendation list
type ShoppingCategory string

const (
	ShoppingRecommended ShoppingCategory = "recommended"
	ShoppingTrending    ShoppingCategory = "trending"
	ShoppingMissing     ShoppingCategory = "missing"
	ShoppingSeasonal    ShoppingCategory = "seasonal"
)

// Label returns the display name of the list
func (c ShoppingCategory) Label() string {
	switch c {
	case ShoppingRecommended:
		return "맞춤 추천"
	case ShoppingTrending:
		return "트렌딩"
	case ShoppingMissing:
		return "부족한 아이템"
	case ShoppingSeasonal:
		return "시즌 아이템"
	default:
		return string(c)
	}
}

// PriceRange filters shopping recommendations by price
type PriceRange string

const (
	PriceAll      PriceRange = "all"
	PriceUnder50  PriceRange = "under50"
	Price50To100  PriceRange = "50to100"
	Price100To200 PriceRange = "100to200"
	PriceOver200  PriceRange = "over200"
)

// Label returns the display name of the range
func (r PriceRange) Label() string {
	switch r {
	case PriceAll:
		return "전체"
	case PriceUnder50:
		return "5만원 이하"
	case Price50To100:
		return "5-10만원"
	case Price100To200:
		return "10-20만원"
	case PriceOver200:
		return "20만원 이상"
	default:
		return string(r)
	}
}

// PriceRanges lists every price filter, "all" first
func PriceRanges() []PriceRange {
	return []PriceRange{PriceAll, PriceUnder50, Price50To100, Price100To200, PriceOver200}
}

// Product is a shopping recommendation
type Product struct {
	ID            int
	Name          string
	Brand         string
	Price         int // won
	OriginalPrice int // zero when not discounted
	Discount      int // percent
	Rating        float64
	Reviews       int
	MatchScore    int
	Reason        string
	Tags          []string
	InStock       bool
	FastShipping  bool
	Categories    []ShoppingCategory
}

// Period is the time window of a style report
type Period string

const (
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodSeason Period = "season"
	PeriodYear   Period = "year"
)

// Label returns the display name of the period.
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "이번 주"
	case PeriodMonth:
		return "이번 달"
	case PeriodSeason:
		return "이번 시즌"
	case PeriodYear:
		return "올해"
	default:
		return string(p)
	}
}

// Share is a named percentage
type Share struct {
	Name        string
	Percentage  int
	Description string
}

// DayTrend is the outfit count of one weekday
type DayTrend struct {
	Day     string
	Outfits int
	Style   string
}

// Insight is an improvement suggestion of a style report
type Insight struct {
	Title       string
	Description string
	Priority    string // high, medium, low
	Action      string
}

// StyleReport summarises the user's style over a period
type StyleReport struct {
	Period     Period
	Confidence int
	Colors     []Share
	Styles     []Share
	Weekly     []DayTrend
	Insights   []Insight
}

// StylePreference is a selectable style
type StylePreference struct {
	Name        string
	Description string
}

// SkinTone is a selectable skin tone
type SkinTone struct {
	ID    string
	Name  string
	Color string
}

// BodyProfile is the result of a body photo analysis
type BodyProfile struct {
	BodyType    string   `json:"bodyType"`
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}
