package catalog

import "github.com/blackpdx/ggokka-ot/internal/model"

// Mock data shown until recommendations come from a real backend.

var wardrobeItems = []model.WardrobeItem{
	{ID: 1, Name: "화이트 셔츠", Brand: "Uniqlo", Color: "화이트", Size: "M", Category: model.CategoryTops,
		Loved: true, WornCount: 12, LastWorn: "3일 전", Price: 29000, Tags: []string{"미니멀", "오피스"}},
	{ID: 2, Name: "블랙 슬랙스", Brand: "K-Fit", Color: "블랙", Size: "30", Category: model.CategoryBottoms,
		WornCount: 20, LastWorn: "어제", Price: 49000, Tags: []string{"미니멀"}},
	{ID: 3, Name: "라이트 자켓", Brand: "Muji", Color: "그레이", Size: "L", Category: model.CategoryOuterwear,
		WornCount: 7, LastWorn: "5일 전", Price: 69000, Tags: []string{"캐주얼"}},
	{ID: 4, Name: "러닝 스니커즈", Brand: "Nike", Color: "화이트", Size: "270", Category: model.CategoryShoes,
		Loved: true, WornCount: 35, LastWorn: "오늘", Price: 119000, Tags: []string{"스포티"}},
	{ID: 5, Name: "실버 링", Brand: "Local", Color: "실버", Size: "Free", Category: model.CategoryAccessories,
		WornCount: 14, LastWorn: "2주 전", Price: 19000, Tags: []string{"미니멀"}},
}

var outfits = map[model.Occasion][]model.Outfit{
	model.OccasionDaily: {
		{ID: 1, Title: "스프링 캐주얼", Items: []string{"화이트 블라우스", "데님 재킷", "베이지 팬츠", "화이트 스니커즈"},
			Score: 94, Reason: "날씨와 스타일 선호도에 완벽 매치"},
		{ID: 2, Title: "미니멀 시크", Items: []string{"블랙 니트", "그레이 슬랙스", "블랙 로퍼", "심플 백"},
			Score: 89, Reason: "깔끔하고 세련된 일상 스타일"},
	},
	model.OccasionWork: {
		{ID: 1, Title: "프로페셔널 시크", Items: []string{"네이비 블레이저", "화이트 셔츠", "그레이 팬츠", "블랙 펌프스"},
			Score: 96, Reason: "비즈니스 환경에 완벽한 전문적 룩"},
		{ID: 2, Title: "모던 오피스 룩", Items: []string{"베이지 재킷", "스트라이프 셔츠", "블랙 스커트", "누드 힐"},
			Score: 91, Reason: "세련되고 편안한 업무용 스타일"},
	},
	model.OccasionDate: {
		{ID: 1, Title: "로맨틱 페미닌", Items: []string{"플라워 원피스", "카디건", "발레 플랫", "크로스백"},
			Score: 93, Reason: "데이트에 완벽한 로맨틱한 무드"},
		{ID: 2, Title: "엘레강트 시크", Items: []string{"실크 블라우스", "하이웨이스트 스커트", "하이힐", "클러치백"},
			Score: 88, Reason: "우아하고 세련된 데이트 룩"},
	},
	model.OccasionParty: {
		{ID: 1, Title: "글래머러스 파티", Items: []string{"시퀸 드레스", "스트래피 힐", "클러치백", "골드 액세서리"},
			Score: 95, Reason: "파티에서 시선을 사로잡는 화려한 룩"},
		{ID: 2, Title: "세련된 칵테일", Items: []string{"리틀 블랙 드레스", "블레이저", "하이힐", "스테이트먼트 귀걸이"},
			Score: 90, Reason: "우아하면서도 적당히 화려한 파티 룩"},
	},
	model.OccasionCasual: {
		{ID: 1, Title: "편안한 캐주얼", Items: []string{"오버사이즈 티셔츠", "데님 팬츠", "컨버스 스니커즈", "백팩"},
			Score: 92, Reason: "편안하고 자연스러운 캐주얼 룩"},
		{ID: 2, Title: "스트릿 캐주얼", Items: []string{"후드티", "조거 팬츠", "스니커즈", "크로스백"},
			Score: 87, Reason: "트렌디한 스트릿 스타일"},
	},
	model.OccasionFormal: {
		{ID: 1, Title: "클래식 포멀", Items: []string{"블랙 수트", "화이트 셔츠", "블랙 타이", "드레스 슈즈"},
			Score: 97, Reason: "격식있는 자리에 완벽한 포멀 룩"},
		{ID: 2, Title: "엘레강트 포멀", Items: []string{"미디 드레스", "재킷", "하이힐", "클러치백"},
			Score: 94, Reason: "우아하고 품격있는 포멀 스타일"},
	},
}

var curatedOutfits = []model.CuratedOutfit{
	{ID: 1, Title: "모던 레이어드 룩", Description: "가벼운 니트와 트렌치코트의 완벽한 조합",
		Temperature: "18-22°C", Occasion: "데일리/오피스", Likes: 127},
	{ID: 2, Title: "캐주얼 시크", Description: "편안하면서도 세련된 일상 스타일링",
		Temperature: "20-25°C", Occasion: "캐주얼/데이트", Likes: 89},
	{ID: 3, Title: "미니멀 엘레강스", Description: "절제된 아름다움의 정수",
		Temperature: "15-20°C", Occasion: "포멀/미팅", Likes: 203},
}

var products = []model.Product{
	{ID: 1, Name: "클래식 트렌치 코트", Brand: "Burberry", Price: 2890000, OriginalPrice: 3200000, Discount: 10,
		Rating: 4.8, Reviews: 127, MatchScore: 95, Reason: "당신의 미니멀 스타일과 완벽 매치",
		Tags: []string{"베스트셀러", "리뷰 좋음"}, InStock: true, FastShipping: true,
		Categories: []model.ShoppingCategory{model.ShoppingRecommended, model.ShoppingSeasonal}},
	{ID: 2, Name: "코튼 화이트 셔츠", Brand: "COS", Price: 129000,
		Rating: 4.6, Reviews: 89, MatchScore: 92, Reason: "옷장의 블랙 팬츠와 완벽한 조합",
		Tags: []string{"신상품"}, InStock: true,
		Categories: []model.ShoppingCategory{model.ShoppingRecommended, model.ShoppingMissing}},
	{ID: 3, Name: "미니멀 레더 백", Brand: "Mansur Gavriel", Price: 450000, OriginalPrice: 520000, Discount: 15,
		Rating: 4.9, Reviews: 203, MatchScore: 88, Reason: "심플한 디자인으로 데일리 매치 완벽",
		Tags:       []string{"한정 세일", "리뷰 좋음"},
		Categories: []model.ShoppingCategory{model.ShoppingRecommended, model.ShoppingTrending}},
	{ID: 4, Name: "화이트 레더 스니커즈", Brand: "Common Projects", Price: 389000,
		Rating: 4.7, Reviews: 156, MatchScore: 90, Reason: "캐주얼한 룩에 모던함을 더해줌",
		Tags: []string{"스테디셀러"}, InStock: true, FastShipping: true,
		Categories: []model.ShoppingCategory{model.ShoppingRecommended, model.ShoppingTrending, model.ShoppingMissing}},
}

var styleReport = model.StyleReport{
	Confidence: 89,
	Colors: []model.Share{
		{Name: "블랙", Percentage: 35},
		{Name: "화이트", Percentage: 28},
		{Name: "베이지", Percentage: 20},
		{Name: "그레이", Percentage: 17},
	},
	Styles: []model.Share{
		{Name: "미니멀", Percentage: 45, Description: "깔끔하고 절제된 스타일"},
		{Name: "캐주얼", Percentage: 25, Description: "편안하고 자연스러운 룩"},
		{Name: "클래식", Percentage: 20, Description: "시간을 초월한 우아함"},
		{Name: "모던", Percentage: 10, Description: "현대적이고 트렌디한 감각"},
	},
	Weekly: []model.DayTrend{
		{Day: "월", Outfits: 2, Style: "오피스 캐주얼"},
		{Day: "화", Outfits: 1, Style: "미니멀"},
		{Day: "수", Outfits: 2, Style: "캐주얼"},
		{Day: "목", Outfits: 1, Style: "클래식"},
		{Day: "금", Outfits: 2, Style: "세미 포멀"},
		{Day: "토", Outfits: 3, Style: "캐주얼"},
		{Day: "일", Outfits: 1, Style: "편안함"},
	},
	Insights: []model.Insight{
		{Title: "컬러 다양성 확대", Description: "현재 중성 색상 위주의 코디가 많아. 포인트 컬러나 파스텔 톤을 추가해보자.",
			Priority: "high", Action: "새로운 컬러 아이템 추천받기"},
		{Title: "스타일 밸런스", Description: "미니멀 비중이 높아. 가끔은 볼드한 패턴이나 텍스처도 시도해보자.",
			Priority: "medium", Action: "패턴 아이템 찾아보기"},
		{Title: "액세서리 활용", Description: "기본 스타일에 액세서리로 포인트 주면 더 다채로워져.",
			Priority: "low", Action: "액세서리 추천받기"},
	},
}

var stylePreferences = []model.StylePreference{
	{Name: "캐주얼", Description: "편안하고 자연스러운 일상 스타일"},
	{Name: "미니멀", Description: "깔끔하고 심플한 세련된 스타일"},
	{Name: "클래식", Description: "우아하고 고급스러운 정통 스타일"},
	{Name: "러블리", Description: "사랑스럽고 여성스러운 로맨틱 스타일"},
	{Name: "스트릿", Description: "개성있고 트렌디한 도시 스타일"},
	{Name: "스포티", Description: "활동적이고 편안한 스포츠 룩"},
	{Name: "비즈니스", Description: "전문적이고 세련된 오피스 스타일"},
	{Name: "보헤미안", Description: "자유롭고 예술적인 보헤미안 스타일"},
	{Name: "프렙피", Description: "단정하고 깔끔한 아이비리그 스타일"},
	{Name: "빈티지", Description: "클래식하고 복고적인 레트로 스타일"},
}

var skinTones = []model.SkinTone{
	{ID: "cool-fair", Name: "쿨 페어", Color: "#F7E7CE"},
	{ID: "warm-fair", Name: "웜 페어", Color: "#F2D7A7"},
	{ID: "cool-medium", Name: "쿨 미디움", Color: "#E8B887"},
	{ID: "warm-medium", Name: "웜 미디움", Color: "#D4A574"},
	{ID: "cool-tan", Name: "쿨 탄", Color: "#C08B5C"},
	{ID: "warm-tan", Name: "웜 탄", Color: "#A67449"},
}
