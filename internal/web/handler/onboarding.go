package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
	"github.com/blackpdx/ggokka-ot/internal/web/middleware"
	"github.com/blackpdx/ggokka-ot/internal/web/session"
)

// Login checks the posted credentials against the backend
func (h *AppHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}

	form := forms.LoginForm{
		Email:    forms.SanitizeEmail(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		if err := requireScreen(s, model.ScreenLogin); err != nil {
			return "", err
		}
		if err := form.Validate(); err != nil {
			return "", err
		}

		user, err := h.authService.Login(r.Context(), form.Email, form.Password)
		if err != nil {
			return "", err
		}

		screen, err := s.Flow.Transition(model.EventLoginSuccess, model.Payload{Name: user.Name, Email: user.Email})
		if err != nil {
			return "", err
		}
		middleware.SetFlash(w, "success", "로그인 성공")
		return screen, nil
	})
}

// Signup drives the three-step signup form and submits it on the last step
func (h *AppHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}

	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		if err := requireScreen(s, model.ScreenSignup); err != nil {
			return "", err
		}
		f := s.Signup
		readSignupStep(f, r)

		switch r.FormValue("action") {
		case "toggle":
			f.ToggleStyle(r.FormValue("style"))
		case "back":
			f.Back()
		case "next":
			if f.Step == 1 {
				if err := checkCredentials(f); err != nil {
					return "", err
				}
			}
			if !f.Next() {
				return "", errStepIncomplete
			}
		case "submit":
			return h.submitSignup(r.Context(), w, s)
		default:
			return "", errStepIncomplete
		}
		return s.Flow.Screen(), nil
	})
}

func readSignupStep(f *forms.SignupForm, r *http.Request) {
	switch f.Step {
	case 1:
		if r.Form.Has("name") {
			f.Name = r.FormValue("name")
		}
		if r.Form.Has("email") {
			f.Email = forms.SanitizeEmail(r.FormValue("email"))
		}
		if r.Form.Has("password") {
			f.Password = r.FormValue("password")
		}
	case 2:
		if g, ok := ageGroup(r); ok {
			f.SetAgeGroup(g)
		}
	}
}

func checkCredentials(f *forms.SignupForm) error {
	if f.Email != "" && !model.ValidEmail(f.Email) {
		return &forms.ValidationError{Field: "email", Message: forms.MsgInvalidEmail}
	}
	if f.Password != "" && !forms.ValidPassword(f.Password) {
		return &forms.ValidationError{Field: "password", Message: forms.MsgInvalidPassword}
	}
	return nil
}

func (h *AppHandler) submitSignup(ctx context.Context, w http.ResponseWriter, s *session.Session) (model.Screen, error) {
	f := s.Signup
	if !f.Last() || !f.CanProceed() {
		return "", errStepIncomplete
	}

	p := f.Payload()
	user, err := h.authService.Signup(ctx, auth.SignupRequest{
		Name:             p.Name,
		Email:            p.Email,
		Password:         p.Password,
		AgeGroup:         p.AgeGroup,
		StylePreferences: p.StylePreferences,
	})
	if err != nil {
		return "", err
	}

	screen, err := s.Flow.Transition(model.EventSignupSuccess, model.Payload{Name: user.Name, Email: user.Email})
	if err != nil {
		return "", err
	}

	s.Signup = forms.NewSignupForm()
	if s.Profile.Name == "" {
		s.Profile.Name = user.Name
	}
	if s.Profile.AgeGroup == nil && user.AgeGroup != nil {
		s.Profile.SetAgeGroup(*user.AgeGroup)
	}
	h.logger.Info("user signed up", slog.Int64("user_id", int64(user.ID)))
	middleware.SetFlash(w, "success", "회원가입 성공")
	return screen, nil
}

// Profile drives the five-step profile form
func (h *AppHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}

	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		if err := requireScreen(s, model.ScreenUserProfileSetup); err != nil {
			return "", err
		}
		f := s.Profile
		h.readProfileStep(f, r)

		switch r.FormValue("action") {
		case "toggle":
			f.ToggleStyle(r.FormValue("style"))
		case "back":
			f.Back()
		case "next":
			if !f.Next() {
				return "", errStepIncomplete
			}
		case "submit":
			if !f.Last() || !f.CanProceed() {
				return "", errStepIncomplete
			}
			p := f.Payload()
			screen, err := s.Flow.Transition(model.EventProfileComplete, model.Payload{Name: p.Name})
			if err != nil {
				return "", err
			}
			h.logger.Debug("profile complete",
				slog.String("session", s.ID),
				slog.String("skin_tone", p.SkinTone),
				slog.Int("styles", len(p.StylePreferences)),
			)
			return screen, nil
		default:
			return "", errStepIncomplete
		}
		return s.Flow.Screen(), nil
	})
}

func (h *AppHandler) readProfileStep(f *forms.ProfileForm, r *http.Request) {
	switch f.Step {
	case 1:
		if r.Form.Has("name") {
			f.Name = r.FormValue("name")
		}
	case 2:
		if g := r.FormValue("gender"); slices.Contains(forms.Genders, g) {
			f.Gender = g
		}
	case 3:
		if g, ok := ageGroup(r); ok {
			f.SetAgeGroup(g)
		}
	case 4:
		tone := r.FormValue("skinTone")
		if slices.ContainsFunc(h.catalogService.SkinTones(), func(t model.SkinTone) bool { return t.ID == tone }) {
			f.SkinTone = tone
		}
	case 5:
		m := &f.Measurements
		for field, dst := range map[string]*string{
			"height": &m.Height,
			"weight": &m.Weight,
			"chest":  &m.Chest,
			"waist":  &m.Waist,
			"hip":    &m.Hip,
		} {
			if r.Form.Has(field) {
				*dst = strings.TrimSpace(r.FormValue(field))
			}
		}
	}
}

func ageGroup(r *http.Request) (int, bool) {
	g, err := strconv.Atoi(r.FormValue("ageGroup"))
	if err != nil || !model.ValidAgeGroup(g) {
		return 0, false
	}
	return g, true
}

// Analysis starts a body photo analysis for the session. The result arrives
// later over SSE.
func (h *AppHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}
	photo := strings.TrimSpace(r.FormValue("photo"))
	s := middleware.GetSession(r.Context())

	s.Lock()
	if err := requireScreen(s, model.ScreenBodyPhotoSetup); err != nil {
		s.Unlock()
		h.fail(w, r, h.message(err))
		return
	}
	if s.Analysis.Running {
		s.Unlock()
		h.fail(w, r, msgAnalysisRunning)
		return
	}
	s.CancelAnalysis()
	s.Analysis = session.Analysis{Running: true}
	// The analysis outlives this request
	ctx, cancel := context.WithCancel(context.Background())
	s.SetAnalysisCancel(cancel)
	s.Unlock()

	// Start notifies synchronously, so the session must be unlocked here
	if _, err := h.analyzer.Start(ctx, s.ID+":"+photo, h.analysisNotifier(s)); err != nil {
		s.Lock()
		s.CancelAnalysis()
		s.Analysis = session.Analysis{}
		s.Unlock()
		h.fail(w, r, h.message(err))
		return
	}

	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

// analysisNotifier records analysis progress on the session and forwards it
// to the session's SSE stream. Notifications of a superseded job are dropped.
func (h *AppHandler) analysisNotifier(s *session.Session) func(model.Notification) {
	return func(n model.Notification) {
		s.Lock()
		current := true
		switch p := n.Payload.(type) {
		case string:
			if s.Analysis.Running && s.Analysis.JobID == "" {
				s.Analysis.JobID = p
			} else {
				current = false
			}
		case model.AnalysisCompletePayload:
			if current = s.Analysis.JobID == p.JobID; current {
				profile := p.Profile
				s.Analysis = session.Analysis{JobID: p.JobID, Profile: &profile}
				s.CancelAnalysis()
			}
		case model.AnalysisFailedPayload:
			if current = s.Analysis.JobID == p.JobID; current {
				s.Analysis = session.Analysis{JobID: p.JobID, Error: msgAnalysisFailed}
				s.CancelAnalysis()
			}
		}
		n.SessionID = s.ID
		n.Screen = s.Flow.Screen()
		s.Unlock()

		if current {
			h.broadcaster.Notify(n)
		}
	}
}
