package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/random"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
	"github.com/blackpdx/ggokka-ot/internal/storage/memory"
	"github.com/blackpdx/ggokka-ot/internal/tui"
)

func newAppCmd() *cobra.Command {
	var (
		local      bool
		backPolicy string
		delay      time.Duration
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "app",
		Short: "Run the terminal app",
		Long: `Run the terminal version of the app. Accounts are checked against the server
unless --local is given, in which case they live in memory for this run only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer func() { _ = f.Close() }()
				level := slog.LevelInfo
				if cfg.Verbose {
					level = slog.LevelDebug
				}
				logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
			}

			policy := flow.BackPolicy(backPolicy)
			if policy != flow.BackLinear && policy != flow.BackToAuth {
				return fmt.Errorf("--back-policy must be %q or %q", flow.BackLinear, flow.BackToAuth)
			}

			clk := clock.New()
			var backend tui.Backend = apiBackend{client: client}
			if local {
				backend = tui.LocalBackend{Auth: auth.New(memory.New(), clk, auth.DefaultConfig())}
			}

			return tui.Run(cmd.Context(), tui.Options{
				Backend:  backend,
				Catalog:  catalog.New(random.New()),
				Analyzer: analysis.New(clk, delay, logger),
				Flow: flow.Config{
					BackPolicy: policy,
					Unavailable: []model.Screen{
						model.ScreenVirtualFitting,
						model.ScreenRecentStyling,
						model.ScreenBlockedOutfits,
					},
				},
				Logger: logger,
			})
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Keep accounts in memory instead of calling the server")
	cmd.Flags().StringVar(&backPolicy, "back-policy", string(flow.BackLinear), "Back navigation from profile setup: linear or to-auth")
	cmd.Flags().DurationVar(&delay, "analysis-delay", analysis.DefaultDelay, "How long body analysis takes")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	return cmd
}

// apiBackend serves the terminal app's account calls from the JSON API
type apiBackend struct {
	client *Client
}

func (b apiBackend) Login(ctx context.Context, email, password string) (tui.Account, error) {
	result, err := b.client.Login(ctx, email, password)
	if err != nil {
		return tui.Account{}, translateError(err)
	}
	return tui.Account{Name: result.User.Name, Email: result.User.Email}, nil
}

func (b apiBackend) Signup(ctx context.Context, p forms.SignupPayload) (tui.Account, error) {
	result, err := b.client.Signup(ctx, SignupRequest{
		Name:             p.Name,
		Email:            p.Email,
		Password:         p.Password,
		AgeGroup:         p.AgeGroup,
		StylePreferences: p.StylePreferences,
	})
	if err != nil {
		return tui.Account{}, translateError(err)
	}
	return tui.Account{Name: result.User.Name, Email: result.User.Email}, nil
}

// translateError maps API status codes back onto the service errors
func translateError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", auth.ErrInvalidCredentials, apiErr.Message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", auth.ErrEmailExists, apiErr.Message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", model.ErrValidation, apiErr.Message)
	default:
		return err
	}
}
