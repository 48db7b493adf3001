package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/nlplab/internal/server"
	"github.com/cognicore/nlplab/internal/settings"
)

func newServeCmd(app *App, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, app)
		},
	}

	f := cmd.Flags()
	f.String(settings.KeyAddr, ":8080", "listen address")
	f.Float64(settings.KeyRateLimit, 20, "requests per second, 0 disables limiting")
	f.Int(settings.KeyRateBurst, 40, "rate limiter burst")
	f.StringSlice(settings.KeyCORSOrigins, []string{"*"}, "allowed CORS origins")
	f.Duration(settings.KeyTimeout, 10*time.Second, "per-request timeout")
	bindFlags(v, f.Lookup, settings.KeyAddr, settings.KeyRateLimit, settings.KeyRateBurst,
		settings.KeyCORSOrigins, settings.KeyTimeout)
	return cmd
}

func serve(ctx context.Context, app *App) error {
	s := app.Settings
	srv := server.New(app.Engine, app.Logger, server.Config{
		Addr:        s.Addr,
		RateLimit:   s.RateLimit,
		RateBurst:   s.RateBurst,
		CORSOrigins: s.CORSOrigins,
		Timeout:     s.Timeout,
	}, nil)
	return srv.ListenAndServe(ctx)
}
