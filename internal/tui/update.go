package tui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case signupDoneMsg:
		return m.handleSignupDone(msg)
	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelAnalysis()
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.updateScreen(msg)
	}
	return m, nil
}

func (m Model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.flow.Screen() {
	case model.ScreenSplash:
		return m.updateSplash(msg)
	case model.ScreenLogin:
		return m.updateLogin(msg)
	case model.ScreenSignup:
		return m.updateSignup(msg)
	case model.ScreenUserProfileSetup:
		return m.updateProfile(msg)
	case model.ScreenBodyPhotoSetup:
		return m.updateBodyPhoto(msg)
	case model.ScreenWardrobeSetup:
		return m.updateWardrobeSetup(msg)
	case model.ScreenHome:
		return m.updateHome(msg)
	default:
		return m.updateMain(msg)
	}
}

// Message handlers

func (m Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	if m.transition(model.EventLoginSuccess, model.Payload{Name: msg.account.Name, Email: msg.account.Email}) {
		m.login = forms.LoginForm{}
		m.loginField = 0
		m.setStatus("로그인 성공")
	}
	return m, nil
}

func (m Model) handleSignupDone(msg signupDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	ageGroup := m.signup.AgeGroup
	if m.transition(model.EventSignupSuccess, model.Payload{Name: msg.account.Name, Email: msg.account.Email}) {
		m.signup = forms.NewSignupForm()
		m.field = 0
		m.profile = forms.NewProfileForm(m.catalog.StyleNames())
		m.profile.Name = msg.account.Name
		m.profile.AgeGroup = ageGroup
		m.setStatus("회원가입 성공")
	}
	return m, nil
}

func (m Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.analysis.seq || !m.analysis.running {
		return m, nil
	}
	m.analysis.running = false
	m.analysis.cancel = nil
	if msg.err != nil {
		m.status = msgAnalysisFailed
		m.statusErr = true
		return m, nil
	}
	profile := msg.profile
	m.analysis.result = &profile
	m.setStatus("체형 분석 완료")
	return m, nil
}

// Onboarding

func (m Model) updateSplash(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.transition(model.EventGetStarted, model.Payload{})
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.loginField = (m.loginField + 1) % 2
	case tea.KeyShiftTab, tea.KeyUp:
		m.loginField = (m.loginField + 1) % 2
	case tea.KeyEsc:
		m.back()
	case tea.KeyCtrlN:
		m.transition(model.EventGoToSignup, model.Payload{})
	case tea.KeyEnter:
		form := forms.LoginForm{Email: forms.SanitizeEmail(m.login.Email), Password: m.login.Password}
		if err := form.Validate(); err != nil {
			m.setError(err)
			return m, nil
		}
		m.busy = true
		m.setStatus("로그인 중...")
		return m, loginCmd(m.ctx, m.backend, form.Email, form.Password)
	default:
		if m.loginField == 0 {
			m.login.Email = forms.SanitizeEmail(editText(m.login.Email, msg))
		} else {
			m.login.Password = editText(m.login.Password, msg)
		}
	}
	return m, nil
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.signup
	if msg.Type == tea.KeyEsc {
		if !f.Back() {
			m.transition(model.EventBackToLogin, model.Payload{})
		}
		m.cursor = 0
		return m, nil
	}

	switch f.Step {
	case 1:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.field = (m.field + 1) % 3
		case tea.KeyShiftTab, tea.KeyUp:
			m.field = (m.field + 2) % 3
		case tea.KeyEnter:
			if !f.CanProceed() {
				m.status, m.statusErr = msgStepIncomplete, true
				return m, nil
			}
			if err := checkCredentials(f.Email, f.Password); err != nil {
				m.setError(err)
				return m, nil
			}
			f.Next()
			m.cursor = ageIndex(f.AgeGroup)
		default:
			switch m.field {
			case 0:
				f.Name = editText(f.Name, msg)
			case 1:
				f.Email = forms.SanitizeEmail(editText(f.Email, msg))
			default:
				f.Password = editText(f.Password, msg)
			}
		}
	case 2:
		ages := model.AgeGroups()
		switch msg.Type {
		case tea.KeyLeft, tea.KeyUp:
			m.cursor = max(m.cursor-1, 0)
		case tea.KeyRight, tea.KeyDown:
			m.cursor = min(m.cursor+1, len(ages)-1)
		case tea.KeyEnter:
			f.SetAgeGroup(ages[m.cursor])
			f.Next()
			m.cursor = 0
		}
	case 3:
		switch msg.Type {
		case tea.KeyUp:
			m.cursor = max(m.cursor-1, 0)
		case tea.KeyDown:
			m.cursor = min(m.cursor+1, len(forms.SignupStyles)-1)
		case tea.KeySpace:
			f.ToggleStyle(forms.SignupStyles[m.cursor])
		case tea.KeyEnter:
			if !f.CanProceed() {
				m.status, m.statusErr = msgStepIncomplete, true
				return m, nil
			}
			m.busy = true
			m.setStatus("가입 중...")
			return m, signupCmd(m.ctx, m.backend, f.Payload())
		}
	}
	return m, nil
}

func checkCredentials(email, password string) error {
	if !model.ValidEmail(email) {
		return &forms.ValidationError{Field: "email", Message: forms.MsgInvalidEmail}
	}
	if !forms.ValidPassword(password) {
		return &forms.ValidationError{Field: "password", Message: forms.MsgInvalidPassword}
	}
	return nil
}

func ageIndex(g *int) int {
	if g == nil {
		return 0
	}
	return max(slices.Index(model.AgeGroups(), *g), 0)
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.profile
	if msg.Type == tea.KeyEsc {
		if f.Back() {
			m.cursor = m.profileCursor()
		} else {
			m.back()
		}
		return m, nil
	}

	options := m.profileOptions()
	switch {
	case f.Step == 1 && msg.Type != tea.KeyEnter:
		f.Name = editText(f.Name, msg)
		return m, nil
	case msg.Type == tea.KeyLeft || msg.Type == tea.KeyUp:
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case msg.Type == tea.KeyRight || msg.Type == tea.KeyDown:
		m.cursor = min(m.cursor+1, len(options)-1)
		return m, nil
	case msg.Type == tea.KeySpace && f.Step == 5:
		f.ToggleStyle(options[m.cursor])
		return m, nil
	case msg.Type != tea.KeyEnter:
		return m, nil
	}

	switch f.Step {
	case 2:
		f.Gender = forms.Genders[m.cursor]
	case 3:
		f.SetAgeGroup(model.AgeGroups()[m.cursor])
	case 4:
		f.SkinTone = m.catalog.SkinTones()[m.cursor].ID
	}
	if !f.CanProceed() {
		m.status, m.statusErr = msgStepIncomplete, true
		return m, nil
	}
	if f.Last() {
		m.transition(model.EventProfileComplete, model.Payload{Name: f.Payload().Name})
		return m, nil
	}
	f.Next()
	m.cursor = m.profileCursor()
	return m, nil
}

// profileOptions lists the choices of the current profile step
func (m Model) profileOptions() []string {
	switch m.profile.Step {
	case 2:
		return forms.Genders
	case 3:
		labels := []string{}
		for _, g := range model.AgeGroups() {
			labels = append(labels, model.AgeGroupLabel(g))
		}
		return labels
	case 4:
		names := []string{}
		for _, t := range m.catalog.SkinTones() {
			names = append(names, t.Name)
		}
		return names
	case 5:
		return m.catalog.StyleNames()
	default:
		return nil
	}
}

// profileCursor points the cursor at the value already chosen on this step
func (m Model) profileCursor() int {
	f := m.profile
	switch f.Step {
	case 2:
		return max(slices.Index(forms.Genders, f.Gender), 0)
	case 3:
		return ageIndex(f.AgeGroup)
	case 4:
		return max(slices.IndexFunc(m.catalog.SkinTones(), func(t model.SkinTone) bool { return t.ID == f.SkinTone }), 0)
	default:
		return 0
	}
}

func (m Model) updateBodyPhoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.back()
	case tea.KeyEnter:
		if m.analysis.result != nil {
			m.transition(model.EventPhotoComplete, model.Payload{})
			return m, nil
		}
		if m.analysis.running {
			m.status, m.statusErr = msgAnalysisRunning, true
			return m, nil
		}
		ctx, cancel := context.WithCancel(m.ctx)
		m.analysis.seq++
		m.analysis.running = true
		m.analysis.cancel = cancel
		m.setStatus("체형을 분석하고 있어요...")
		return m, analysisCmd(ctx, m.analyzer, m.analysis.seq)
	}
	return m, nil
}

func (m Model) updateWardrobeSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.back()
	case tea.KeyEnter:
		m.transition(model.EventWardrobeComplete, model.Payload{})
	case tea.KeyRunes:
		if string(msg.Runes) == "s" {
			m.transition(model.EventWardrobeSkip, model.Payload{})
		}
	}
	return m, nil
}

// Main screens

// menuScreens lists the screens of the home menu
func menuScreens() []model.Screen {
	return slices.DeleteFunc(model.MainScreens(), func(s model.Screen) bool { return s == model.ScreenHome })
}

func openEvent(target model.Screen) model.Event {
	for event, s := range model.NavigationEvents() {
		if s == target {
			return event
		}
	}
	return ""
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := menuScreens()
	switch msg.Type {
	case tea.KeyUp:
		m.cursor = max(m.cursor-1, 0)
	case tea.KeyDown:
		m.cursor = min(m.cursor+1, len(menu)-1)
	case tea.KeyEnter:
		m.open(menu[m.cursor])
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "o":
			if m.transition(model.EventLogout, model.Payload{}) {
				m.clearForms()
				m.setStatus("로그아웃 되었어요.")
			}
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) open(target model.Screen) {
	if !m.flow.Available(target) {
		m.status, m.statusErr = msgUnavailable, true
		return
	}
	if m.transition(openEvent(target), model.Payload{}) && target == model.ScreenDailyOutfit {
		m.loadOutfits()
	}
}

func (m *Model) loadOutfits() {
	outfits, err := m.catalog.DailyOutfits(m.catalog.Occasions()[m.occasion])
	if err != nil {
		m.setError(err)
		return
	}
	m.outfits = outfits
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
		default:
			m.query = editText(m.query, msg)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc, tea.KeyBackspace:
		m.back()
		return m, nil
	case tea.KeyLeft:
		m.cycleFilter(-1)
		return m, nil
	case tea.KeyRight:
		m.cycleFilter(1)
		return m, nil
	case tea.KeyRunes:
	default:
		return m, nil
	}

	screen := m.flow.Screen()
	switch string(msg.Runes) {
	case "l":
		if m.transition(model.EventLikeOutfit, model.Payload{}) {
			m.setStatus("좋아요를 눌렀어요.")
		}
	case "b":
		if m.transition(model.EventBlockOutfit, model.Payload{}) {
			m.setStatus("코디를 차단했어요.")
		}
	case "r":
		if screen == model.ScreenDailyOutfit {
			m.outfits = m.catalog.Shuffle(m.outfits)
			m.setStatus("새로운 추천을 가져왔어요.")
		}
	case "/":
		if screen == model.ScreenWardrobeManagement {
			m.searching = true
		}
	case "[":
		if screen == model.ScreenShopping {
			m.price = wrap(m.price-1, len(model.PriceRanges()))
		}
	case "]":
		if screen == model.ScreenShopping {
			m.price = wrap(m.price+1, len(model.PriceRanges()))
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) cycleFilter(step int) {
	switch m.flow.Screen() {
	case model.ScreenDailyOutfit:
		m.occasion = wrap(m.occasion+step, len(m.catalog.Occasions()))
		m.loadOutfits()
	case model.ScreenWardrobeManagement:
		m.category = wrap(m.category+step, len(m.catalog.WardrobeCategories()))
	case model.ScreenStyleAnalysis:
		m.period = wrap(m.period+step, len(m.catalog.Periods()))
	case model.ScreenShopping:
		m.shopCategory = wrap(m.shopCategory+step, len(m.catalog.ShoppingCategories()))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// editText applies a typing key to s
func editText(s string, msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1])
	case tea.KeySpace:
		return s + " "
	case tea.KeyRunes:
		return s + string(msg.Runes)
	default:
		return s
	}
}
