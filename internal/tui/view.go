package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
)

func (m Model) View() string {
	screen := m.flow.Screen()

	var body string
	switch screen {
	case model.ScreenSplash:
		body = m.viewSplash()
	case model.ScreenLogin:
		body = m.viewLogin()
	case model.ScreenSignup:
		body = m.viewSignup()
	case model.ScreenUserProfileSetup:
		body = m.viewProfile()
	case model.ScreenBodyPhotoSetup:
		body = m.viewBodyPhoto()
	case model.ScreenWardrobeSetup:
		body = "옷장에 가지고 있는 옷을 등록하면 더 정확한 추천을 받을 수 있어요."
	case model.ScreenHome:
		body = m.viewHome()
	case model.ScreenTodayCuration:
		body = m.viewTodayCuration()
	case model.ScreenDailyOutfit:
		body = m.viewDailyOutfit()
	case model.ScreenWardrobeManagement:
		body = m.viewWardrobe()
	case model.ScreenStyleAnalysis:
		body = m.viewStyleAnalysis()
	case model.ScreenShopping:
		body = m.viewShopping()
	case model.ScreenRecentStyling:
		body = fmt.Sprintf("좋아요한 코디 %d개", m.flow.Session().LovedCount)
	case model.ScreenBlockedOutfits:
		body = fmt.Sprintf("차단한 코디 %d개", m.flow.Session().BlockedCount)
	default:
		body = msgUnavailable
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(screen.Title()))
	if s := m.flow.Session(); s.SignedIn() {
		b.WriteString("  " + subtleStyle.Render(s.UserName+"님"))
	}
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n")
	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(footerStyle.Render(m.help()))
	return b.String()
}

func (m Model) help() string {
	switch m.flow.Screen() {
	case model.ScreenSplash:
		return "enter 시작하기 · q 종료"
	case model.ScreenLogin:
		return "tab 이동 · enter 로그인 · ctrl+n 회원가입 · esc 뒤로"
	case model.ScreenSignup, model.ScreenUserProfileSetup:
		return "tab/←→ 선택 · space 토글 · enter 다음 · esc 이전"
	case model.ScreenBodyPhotoSetup:
		return "enter 분석/다음 · esc 뒤로"
	case model.ScreenWardrobeSetup:
		return "enter 등록 완료 · s 건너뛰기 · esc 뒤로"
	case model.ScreenHome:
		return "↑↓ 이동 · enter 열기 · o 로그아웃 · q 종료"
	default:
		return "←→ 필터 · l 좋아요 · b 차단 · r 새로고침 · / 검색 · [ ] 가격 · esc 홈"
	}
}

func field(label, value string, focused bool) string {
	line := label + ": " + value
	if focused {
		return focusStyle.Render("> " + line + "_")
	}
	return textStyle.Render("  " + line)
}

func option(label string, focused, selected bool) string {
	mark := "[ ]"
	if selected {
		mark = selectedStyle.Render("[x]")
	}
	if focused {
		return focusStyle.Render("> ") + mark + " " + focusStyle.Render(label)
	}
	return "  " + mark + " " + label
}

func masked(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}

func (m Model) viewSplash() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("꼬까옷"),
		"AI가 추천하는 나만의 스타일",
	)
}

func (m Model) viewLogin() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		field("이메일", m.login.Email, m.loginField == 0),
		field("비밀번호", masked(m.login.Password), m.loginField == 1),
	)
}

func progress(step, total int) string {
	return subtleStyle.Render(fmt.Sprintf("%d / %d 단계", step, total))
}

func (m Model) viewSignup() string {
	f := m.signup
	lines := []string{progress(f.Step, forms.SignupSteps)}
	switch f.Step {
	case 1:
		lines = append(lines,
			field("이름", f.Name, m.field == 0),
			field("이메일", f.Email, m.field == 1),
			field("비밀번호", masked(f.Password), m.field == 2),
		)
	case 2:
		lines = append(lines, "연령대를 선택해주세요")
		for i, g := range model.AgeGroups() {
			lines = append(lines, option(model.AgeGroupLabel(g), i == m.cursor, f.AgeGroup != nil && *f.AgeGroup == g))
		}
	case 3:
		lines = append(lines, "선호하는 스타일을 골라주세요")
		for i, s := range forms.SignupStyles {
			lines = append(lines, option(s, i == m.cursor, f.Selected(s)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewProfile() string {
	f := m.profile
	lines := []string{progress(f.Step, forms.ProfileSteps)}
	if f.Step == 1 {
		lines = append(lines, field("이름", f.Name, true))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for i, o := range m.profileOptions() {
		var selected bool
		switch f.Step {
		case 2:
			selected = f.Gender == o
		case 3:
			selected = f.AgeGroup != nil && model.AgeGroupLabel(*f.AgeGroup) == o
		case 4:
			selected = m.catalog.SkinTones()[i].ID == f.SkinTone
		case 5:
			selected = f.Selected(o)
		}
		lines = append(lines, option(o, i == m.cursor, selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewBodyPhoto() string {
	switch {
	case m.analysis.running:
		return warnStyle.Render("체형을 분석하고 있어요...")
	case m.analysis.result != nil:
		p := m.analysis.result
		lines := []string{
			successStyle.Render("체형: " + p.BodyType),
			p.Summary,
		}
		for _, s := range p.Suggestions {
			lines = append(lines, "· "+s)
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	default:
		return "전신 사진으로 체형을 분석해드려요. enter를 눌러 시작하세요."
	}
}

func (m Model) viewHome() string {
	s := m.flow.Session()
	lines := []string{
		fmt.Sprintf("%s님, 안녕하세요!", s.UserName),
		subtleStyle.Render(fmt.Sprintf("좋아요 %d · 차단 %d", s.LovedCount, s.BlockedCount)),
		"",
	}
	for i, screen := range menuScreens() {
		label := screen.Title()
		if !m.flow.Available(screen) {
			label += " (준비중)"
		}
		if i == m.cursor {
			lines = append(lines, focusStyle.Render("> "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// tabs renders a filter bar with the active entry highlighted
func tabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = focusStyle.Render("[" + l + "]")
		} else {
			parts[i] = subtleStyle.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewTodayCuration() string {
	lines := []string{}
	for _, c := range m.catalog.TodayCuration() {
		lines = append(lines,
			textStyle.Render(c.Title)+" "+subtleStyle.Render(fmt.Sprintf("%s · %s · ♥ %d", c.Temperature, c.Occasion, c.Likes)),
			"  "+c.Description,
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDailyOutfit() string {
	occasions := m.catalog.Occasions()
	labels := make([]string, len(occasions))
	for i, o := range occasions {
		labels[i] = o.Label()
	}
	lines := []string{
		tabs(labels, m.occasion),
		fmt.Sprintf("평균 매칭 %d%%", catalog.AverageScore(m.outfits)),
	}
	for _, o := range m.outfits {
		lines = append(lines,
			textStyle.Render(fmt.Sprintf("%s (%d%%)", o.Title, o.Score)),
			"  "+strings.Join(o.Items, ", "),
			subtleStyle.Render("  "+o.Reason),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewWardrobe() string {
	categories := m.catalog.WardrobeCategories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Label()
	}
	stats := m.catalog.WardrobeStats()
	lines := []string{
		tabs(labels, m.category),
		subtleStyle.Render(fmt.Sprintf("전체 %d · 좋아요 %d · 평균 착용 %s회",
			stats.Total, stats.LovedCount, strconv.FormatFloat(stats.AverageWorn, 'f', 1, 64))),
		field("검색", m.query, m.searching),
	}
	items, err := m.catalog.Wardrobe(categories[m.category], m.query)
	if err != nil || len(items) == 0 {
		lines = append(lines, subtleStyle.Render("아이템이 없어요."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for _, item := range items {
		heart := ""
		if item.Loved {
			heart = " ♥"
		}
		lines = append(lines, fmt.Sprintf("%s · %s · %s%s", item.Name, item.Brand, item.Color, heart))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewStyleAnalysis() string {
	periods := m.catalog.Periods()
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = p.Label()
	}
	report, err := m.catalog.StyleReport(periods[m.period])
	if err != nil {
		return m.message(err)
	}
	lines := []string{
		tabs(labels, m.period),
		fmt.Sprintf("스타일 자신감 %d%%", report.Confidence),
	}
	for _, c := range report.Colors {
		lines = append(lines, fmt.Sprintf("  %s %d%%", c.Name, c.Percentage))
	}
	for _, in := range report.Insights {
		lines = append(lines, warnStyle.Render("! "+in.Title)+" "+in.Description)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewShopping() string {
	categories := m.catalog.ShoppingCategories()
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Label()
	}
	ranges := model.PriceRanges()
	priceLabels := make([]string, len(ranges))
	for i, r := range ranges {
		priceLabels[i] = r.Label()
	}
	lines := []string{tabs(labels, m.shopCategory), tabs(priceLabels, m.price)}
	products, err := m.catalog.Shopping(categories[m.shopCategory], ranges[m.price])
	if err != nil || len(products) == 0 {
		lines = append(lines, subtleStyle.Render("조건에 맞는 상품이 없어요."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	for _, p := range products {
		line := fmt.Sprintf("%s %s · %s원 · 매칭 %d%%", p.Brand, p.Name, won(p.Price), p.MatchScore)
		if !p.InStock {
			line += " " + errorStyle.Render("품절")
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// won formats a price with thousands separators
func won(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
