// Package tui is the terminal front-end of the app. It drives the same flow
// controller as the browser app from a bubbletea update loop.
package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
)

// photoRef names the photo sent for analysis; the terminal has no camera
const photoRef = "terminal-camera.jpg"

const (
	msgInvalidAction   = "지금은 할 수 없는 동작이에요."
	msgUnavailable     = "준비중인 기능입니다."
	msgStepIncomplete  = "필수 항목을 입력해주세요."
	msgLoginFailed     = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgEmailExists     = "이미 가입된 이메일입니다."
	msgServerError     = "서버와 통신할 수 없어요. 잠시 후 다시 시도해주세요."
	msgAnalysisRunning = "이미 체형을 분석하고 있어요."
	msgAnalysisFailed  = "체형 분석에 실패했어요. 다시 시도해주세요."
)

// Options configures a Model
type Options struct {
	Backend  Backend
	Catalog  *catalog.Service
	Analyzer *analysis.Analyzer
	Flow     flow.Config
	Logger   *slog.Logger
}

type loginDoneMsg struct {
	account Account
	err     error
}

type signupDoneMsg struct {
	account Account
	err     error
}

type analysisDoneMsg struct {
	seq     int
	profile model.BodyProfile
	err     error
}

type analysisState struct {
	seq     int
	running bool
	cancel  context.CancelFunc
	result  *model.BodyProfile
}

// Model is the bubbletea model of the terminal app
type Model struct {
	ctx      context.Context
	backend  Backend
	catalog  *catalog.Service
	analyzer *analysis.Analyzer
	logger   *slog.Logger
	flow     *flow.Controller

	width, height int
	status        string
	statusErr     bool
	busy          bool

	login      forms.LoginForm
	loginField int
	signup     *forms.SignupForm
	field      int // focused text field of signup step 1
	profile    *forms.ProfileForm
	cursor     int // option or menu cursor of the current screen
	analysis   analysisState

	occasion     int
	outfits      []model.Outfit
	category     int
	query        string
	searching    bool
	period       int
	shopCategory int
	price        int
}

// New creates a Model positioned on the splash screen
func New(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		ctx:      ctx,
		backend:  opts.Backend,
		catalog:  opts.Catalog,
		analyzer: opts.Analyzer,
		logger:   logger.With(slog.String("component", "tui")),
		flow:     flow.NewController(opts.Flow, logger),
		signup:   forms.NewSignupForm(),
		profile:  forms.NewProfileForm(opts.Catalog.StyleNames()),
	}
}

// Run starts the terminal app and blocks until the user quits
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Screen returns the current screen
func (m Model) Screen() model.Screen {
	return m.flow.Screen()
}

// Session returns the current session state
func (m Model) Session() model.Session {
	return m.flow.Session()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func loginCmd(ctx context.Context, b Backend, email, password string) tea.Cmd {
	return func() tea.Msg {
		account, err := b.Login(ctx, email, password)
		return loginDoneMsg{account: account, err: err}
	}
}

func signupCmd(ctx context.Context, b Backend, p forms.SignupPayload) tea.Cmd {
	return func() tea.Msg {
		account, err := b.Signup(ctx, p)
		return signupDoneMsg{account: account, err: err}
	}
}

func analysisCmd(ctx context.Context, a *analysis.Analyzer, seq int) tea.Cmd {
	return func() tea.Msg {
		profile, err := a.Analyze(ctx, photoRef)
		return analysisDoneMsg{seq: seq, profile: profile, err: err}
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = m.message(err)
	m.statusErr = true
}

func (m *Model) message(err error) string {
	var ve *forms.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, auth.ErrInvalidCredentials):
		return msgLoginFailed
	case errors.Is(err, auth.ErrEmailExists):
		return msgEmailExists
	case errors.Is(err, auth.ErrInvalidEmail):
		return forms.MsgInvalidEmail
	case errors.Is(err, model.ErrScreenUnavailable):
		return msgUnavailable
	case errors.Is(err, model.ErrInvalidTransition), errors.Is(err, model.ErrNoPredecessor):
		return msgInvalidAction
	case errors.Is(err, model.ErrAnalysisInProgress):
		return msgAnalysisRunning
	case errors.Is(err, model.ErrValidation):
		return msgStepIncomplete
	default:
		m.logger.Warn("request failed", slog.String("error", err.Error()))
		return msgServerError
	}
}

// transition fires event and reports whether the screen changed
func (m *Model) transition(event model.Event, payload model.Payload) bool {
	before := m.flow.Screen()
	after, err := m.flow.Transition(event, payload)
	if err != nil {
		m.setError(err)
		return false
	}
	if after != before {
		m.enter()
	}
	return true
}

func (m *Model) back() {
	if _, err := m.flow.Back(); err != nil {
		m.setError(err)
		return
	}
	m.enter()
}

// enter resets per-screen state after the screen changed
func (m *Model) enter() {
	m.cursor = 0
	m.searching = false
	if m.flow.Screen() != model.ScreenBodyPhotoSetup {
		m.cancelAnalysis()
	}
}

func (m *Model) cancelAnalysis() {
	if m.analysis.cancel != nil {
		m.analysis.cancel()
	}
	m.analysis = analysisState{seq: m.analysis.seq}
}

// clearForms drops everything typed so far, as after logout
func (m *Model) clearForms() {
	m.login = forms.LoginForm{}
	m.loginField = 0
	m.signup = forms.NewSignupForm()
	m.field = 0
	m.profile = forms.NewProfileForm(m.catalog.StyleNames())
	m.cancelAnalysis()
	m.outfits = nil
	m.query = ""
}
