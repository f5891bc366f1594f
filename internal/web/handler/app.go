package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
	"github.com/blackpdx/ggokka-ot/internal/web/middleware"
	"github.com/blackpdx/ggokka-ot/internal/web/session"
	"github.com/blackpdx/ggokka-ot/internal/web/sse"
	"github.com/blackpdx/ggokka-ot/internal/web/templates/layout"
	"github.com/blackpdx/ggokka-ot/internal/web/templates/pages"
)

// Flash messages
const (
	msgInvalidForm     = "잘못된 요청입니다."
	msgInvalidAction   = "지금은 할 수 없는 동작이에요."
	msgUnavailable     = "준비중인 기능입니다."
	msgStepIncomplete  = "필수 항목을 입력해주세요."
	msgLoginFailed     = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgOfferSignup     = "회원가입 하시겠어요?"
	msgEmailExists     = "이미 가입된 이메일입니다."
	msgServerError     = "서버와 통신 중 오류가 발생했어요. 잠시 후 다시 시도해주세요."
	msgAnalysisRunning = "이미 체형을 분석하고 있어요."
	msgAnalysisFailed  = "체형 분석에 실패했어요. 다시 시도해주세요."
	msgUnknownFilter   = "알 수 없는 필터예요. 기본 목록을 보여드릴게요."
)

// Events that only the form handlers may fire, after the input was accepted
var formEvents = map[model.Event]bool{
	model.EventLoginSuccess:    true,
	model.EventSignupSuccess:   true,
	model.EventProfileComplete: true,
}

var errStepIncomplete = fmt.Errorf("%w: step incomplete", model.ErrValidation)

// AppHandler serves the screen app. Each browser drives its own flow session.
type AppHandler struct {
	authService    *auth.Service
	catalogService *catalog.Service
	analyzer       *analysis.Analyzer
	hubManager     *sse.HubManager
	broadcaster    *sse.Broadcaster
	clock          clock.Clock
	styles         []string
	logger         *slog.Logger
}

// NewAppHandler creates a new AppHandler
func NewAppHandler(authService *auth.Service, catalogService *catalog.Service, analyzer *analysis.Analyzer, hubManager *sse.HubManager, clk clock.Clock, logger *slog.Logger) *AppHandler {
	return &AppHandler{
		authService:    authService,
		catalogService: catalogService,
		analyzer:       analyzer,
		hubManager:     hubManager,
		broadcaster:    sse.NewBroadcaster(hubManager, logger),
		clock:          clk,
		styles:         catalogService.StyleNames(),
		logger:         logger,
	}
}

// Show renders the current screen of the caller's session
func (h *AppHandler) Show(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	flash := middleware.GetFlash(r.Context())

	// Forms are owned by the session, so render under its lock
	var buf bytes.Buffer
	s.Lock()
	data := h.screenData(s, r.URL.Query())
	if flash != nil {
		data.Flash = flash
	}
	err := pages.Screen(data).Render(r.Context(), &buf)
	s.Unlock()

	if err != nil {
		h.logger.Error("render screen", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Event fires a flow event posted by a screen button
func (h *AppHandler) Event(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}

	event := model.Event(r.FormValue("event"))
	if formEvents[event] {
		h.fail(w, r, msgInvalidAction)
		return
	}

	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		screen, err := s.Flow.Transition(event, model.Payload{Name: r.FormValue("name")})
		if err == nil && event == model.EventLogout {
			s.ClearForms(h.styles)
		}
		return screen, err
	})
}

// Back moves the session to the previous screen
func (h *AppHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		return s.Flow.Back()
	})
}

// Restart sends the session back to the splash screen
func (h *AppHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(s *session.Session) (model.Screen, error) {
		s.Reset(h.styles)
		return s.Flow.Screen(), nil
	})
}

// RefreshOutfits reshuffles the daily outfit recommendations
func (h *AppHandler) RefreshOutfits(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, msgInvalidForm)
		return
	}
	occasion := model.Occasion(r.FormValue("occasion"))
	if occasion == "" {
		occasion = model.OccasionDaily
	}

	s := middleware.GetSession(r.Context())
	s.Lock()
	err := h.refresh(s, occasion)
	s.Unlock()
	if err != nil {
		h.fail(w, r, h.message(err))
		return
	}

	http.Redirect(w, r, "/app?"+url.Values{"occasion": {string(occasion)}}.Encode(), http.StatusSeeOther)
}

func (h *AppHandler) refresh(s *session.Session, occasion model.Occasion) error {
	if err := requireScreen(s, model.ScreenDailyOutfit); err != nil {
		return err
	}
	recs := s.Outfits
	if len(recs) == 0 || recs[0].Occasion != occasion {
		var err error
		if recs, err = h.catalogService.DailyOutfits(occasion); err != nil {
			return err
		}
	}
	s.Outfits = h.catalogService.Shuffle(recs)
	return nil
}

// Events streams the session's notifications over SSE
func (h *AppHandler) Events(w http.ResponseWriter, r *http.Request) {
	s := middleware.GetSession(r.Context())
	hub := h.hubManager.GetOrCreateHub(s.ID)
	sse.ServeSSE(w, r, hub)
}

// apply runs fn under the session lock, then redirects back to the screen.
// An error leaves the screen as it was and becomes a flash message.
func (h *AppHandler) apply(w http.ResponseWriter, r *http.Request, fn func(s *session.Session) (model.Screen, error)) {
	s := middleware.GetSession(r.Context())

	s.Lock()
	before := s.Flow.Screen()
	screen, err := fn(s)
	s.Unlock()

	if err != nil {
		h.failWith(w, r, err)
		return
	}
	if screen != before {
		h.broadcaster.ScreenChanged(s.ID, screen, h.clock.Now())
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

func (h *AppHandler) fail(w http.ResponseWriter, r *http.Request, msg string) {
	middleware.SetFlash(w, "error", msg)
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

// failWith reports err on the next page. Unknown credentials also offer
// signing up.
func (h *AppHandler) failWith(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.SetFlashOffer(w, "error", msgLoginFailed+" "+msgOfferSignup, model.EventGoToSignup, "회원가입")
		http.Redirect(w, r, "/app", http.StatusSeeOther)
		return
	}
	h.fail(w, r, h.message(err))
}

// message turns an error into the text shown to the user
func (h *AppHandler) message(err error) string {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, auth.ErrInvalidCredentials):
		return msgLoginFailed
	case errors.Is(err, auth.ErrEmailExists):
		return msgEmailExists
	case errors.Is(err, auth.ErrInvalidEmail):
		return forms.MsgInvalidEmail
	case errors.Is(err, model.ErrValidation):
		return msgStepIncomplete
	case errors.Is(err, model.ErrScreenUnavailable):
		return msgUnavailable
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, model.ErrNoPredecessor):
		return msgInvalidAction
	case errors.Is(err, model.ErrAnalysisInProgress):
		return msgAnalysisRunning
	case errors.Is(err, model.ErrUnknownOccasion), errors.Is(err, model.ErrUnknownCategory), errors.Is(err, model.ErrUnknownPeriod):
		return msgUnknownFilter
	default:
		h.logger.Error("request failed", slog.String("error", err.Error()))
		return msgServerError
	}
}

func requireScreen(s *session.Session, screen model.Screen) error {
	if current := s.Flow.Screen(); current != screen {
		return fmt.Errorf("%w: %s form posted on %s", model.ErrInvalidTransition, screen, current)
	}
	return nil
}

// screenData collects what the current screen shows. The caller holds the
// session lock.
func (h *AppHandler) screenData(s *session.Session, q url.Values) pages.ScreenData {
	screen := s.Flow.Screen()
	d := pages.ScreenData{
		PageData:  layout.PageData{SessionID: s.ID},
		Screen:    screen,
		Session:   s.Flow.Session(),
		CanBack:   s.Flow.CanBack(),
		Available: make(map[model.Screen]bool),
		Signup:    s.Signup,
		Profile:   s.Profile,
	}
	for _, m := range model.MainScreens() {
		d.Available[m] = s.Flow.Available(m)
	}

	var err error
	switch screen {
	case model.ScreenUserProfileSetup:
		d.SkinTones = h.catalogService.SkinTones()
		d.Styles = h.catalogService.StylePreferences()
	case model.ScreenBodyPhotoSetup:
		d.Analysis = pages.AnalysisView{
			Running: s.Analysis.Running,
			Profile: s.Analysis.Profile,
			Error:   s.Analysis.Error,
		}
	case model.ScreenTodayCuration:
		d.Curation = h.catalogService.TodayCuration()
	case model.ScreenDailyOutfit:
		d.Daily, err = h.dailyView(s, model.Occasion(q.Get("occasion")))
	case model.ScreenWardrobeManagement:
		d.Wardrobe, err = h.wardrobeView(model.WardrobeCategory(q.Get("category")), q.Get("q"))
	case model.ScreenStyleAnalysis:
		d.Report, err = h.reportView(model.Period(q.Get("period")))
	case model.ScreenShopping:
		d.Shopping, err = h.shoppingView(model.ShoppingCategory(q.Get("category")), model.PriceRange(q.Get("price")))
	}
	if err != nil {
		d.Flash = &layout.FlashMessage{Type: "error", Message: h.message(err)}
	}
	return d
}

// dailyView keeps the session's shuffled order while the occasion is
// unchanged. An unknown occasion falls back to daily.
func (h *AppHandler) dailyView(s *session.Session, occasion model.Occasion) (pages.DailyView, error) {
	if occasion == "" {
		occasion = model.OccasionDaily
	}
	var err error
	recs := s.Outfits
	if len(recs) == 0 || recs[0].Occasion != occasion {
		recs, err = h.catalogService.DailyOutfits(occasion)
		if err != nil {
			occasion = model.OccasionDaily
			recs, _ = h.catalogService.DailyOutfits(occasion)
		}
		s.Outfits = recs
	}
	return pages.DailyView{
		Occasion:  occasion,
		Occasions: h.catalogService.Occasions(),
		Outfits:   recs,
		Average:   catalog.AverageScore(recs),
	}, err
}

func (h *AppHandler) wardrobeView(category model.WardrobeCategory, query string) (pages.WardrobeView, error) {
	items, err := h.catalogService.Wardrobe(category, query)
	if err != nil || category == "" {
		category = model.CategoryAll
		if err != nil {
			items, _ = h.catalogService.Wardrobe(category, query)
		}
	}
	return pages.WardrobeView{
		Category: category,
		Query:    query,
		Items:    items,
		Stats:    h.catalogService.WardrobeStats(),
		Counts:   h.catalogService.CategoryCounts(),
	}, err
}

func (h *AppHandler) reportView(period model.Period) (pages.ReportView, error) {
	report, err := h.catalogService.StyleReport(period)
	if err != nil {
		report, _ = h.catalogService.StyleReport("")
	}
	return pages.ReportView{Periods: h.catalogService.Periods(), Report: report}, err
}

func (h *AppHandler) shoppingView(category model.ShoppingCategory, price model.PriceRange) (pages.ShoppingView, error) {
	if category == "" {
		category = model.ShoppingRecommended
	}
	if price == "" {
		price = model.PriceAll
	}
	products, err := h.catalogService.Shopping(category, price)
	if err != nil {
		category, price = model.ShoppingRecommended, model.PriceAll
		products, _ = h.catalogService.Shopping(category, price)
	}
	return pages.ShoppingView{
		Category:   category,
		Categories: h.catalogService.ShoppingCategories(),
		Price:      price,
		Products:   products,
	}, err
}
