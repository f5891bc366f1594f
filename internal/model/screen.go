package model

// Screen identifies one screen of the app. Exactly one screen is current at a time.
type Screen string

const (
	// Onboarding screens
	ScreenSplash           Screen = "splash"
	ScreenLogin            Screen = "login"
	ScreenSignup           Screen = "signup"
	ScreenUserProfileSetup Screen = "user-profile-setup"
	ScreenBodyPhotoSetup   Screen = "body-photo-setup"
	ScreenWardrobeSetup    Screen = "wardrobe-setup"

	// Main screens (reachable from the bottom navigation)
	ScreenHome               Screen = "home"
	ScreenTodayCuration      Screen = "today-curation"
	ScreenDailyOutfit        Screen = "daily-outfit"
	ScreenWardrobeManagement Screen = "wardrobe-management"
	ScreenStyleAnalysis      Screen = "style-analysis"
	ScreenShopping           Screen = "shopping"
	ScreenVirtualFitting     Screen = "virtual-fitting"
	ScreenRecentStyling      Screen = "recent-styling"
	ScreenBlockedOutfits     Screen = "blocked-outfits"
)

var onboardingScreens = []Screen{
	ScreenSplash,
	ScreenLogin,
	ScreenSignup,
	ScreenUserProfileSetup,
	ScreenBodyPhotoSetup,
	ScreenWardrobeSetup,
}

var mainScreens = []Screen{
	ScreenHome,
	ScreenTodayCuration,
	ScreenDailyOutfit,
	ScreenWardrobeManagement,
	ScreenStyleAnalysis,
	ScreenShopping,
	ScreenVirtualFitting,
	ScreenRecentStyling,
	ScreenBlockedOutfits,
}

// AllScreens returns every screen identifier, onboarding first.
func AllScreens() []Screen {
	all := make([]Screen, 0, len(onboardingScreens)+len(mainScreens))
	all = append(all, onboardingScreens...)
	return append(all, mainScreens...)
}

// MainScreens returns the screens reachable from the bottom navigation.
func MainScreens() []Screen {
	return append([]Screen(nil), mainScreens...)
}

// Valid reports whether s is a known screen.
func (s Screen) Valid() bool {
	for _, known := range AllScreens() {
		if s == known {
			return true
		}
	}
	return false
}

// IsMain reports whether s is one of the main (signed-in) screens.
func (s Screen) IsMain() bool {
	for _, m := range mainScreens {
		if s == m {
			return true
		}
	}
	return false
}

// Title returns the display title of the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenSplash:
		return "꼬까옷"
	case ScreenLogin:
		return "로그인"
	case ScreenSignup:
		return "회원가입"
	case ScreenUserProfileSetup:
		return "프로필 설정"
	case ScreenBodyPhotoSetup:
		return "체형 분석"
	case ScreenWardrobeSetup:
		return "옷장 등록"
	case ScreenHome:
		return "홈"
	case ScreenTodayCuration:
		return "오늘의 큐레이션"
	case ScreenDailyOutfit:
		return "데일리 코디 추천"
	case ScreenWardrobeManagement:
		return "내 옷장"
	case ScreenStyleAnalysis:
		return "스타일 분석"
	case ScreenShopping:
		return "쇼핑 추천"
	case ScreenVirtualFitting:
		return "가상 피팅"
	case ScreenRecentStyling:
		return "최근 스타일링"
	case ScreenBlockedOutfits:
		return "차단한 코디"
	default:
		return string(s)
	}
}
