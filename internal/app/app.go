package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"chirpd/internal/digest"
	"chirpd/pkg/config"
	"chirpd/pkg/repo"
	"chirpd/pkg/telemetry"
	"chirpd/pkg/validation"
)

// App encapsulates the server components and lifecycle.
type App struct {
	eff       config.EffectiveConfigResult
	version   string
	commit    string
	buildDate string

	repo *repo.Repo
	srv  *http.Server
}

// New initializes everything that does not require a running context: it
// validates the effective config, installs runtime keys and validation
// rules, and constructs the repository. Call Run to start the HTTP server
// and block until shutdown.
func New(eff config.EffectiveConfigResult, version, commit, buildDate string) (*App, error) {
	_ = godotenv.Load(".env")

	// validate effective config early and fail fast
	if err := validateConfig(eff); err != nil {
		return nil, err
	}

	// runtime keys
	runtimeCfg := &config.RuntimeConfig{BackendKeys: map[string]struct{}{}, AdminKeys: map[string]struct{}{}}
	for _, k := range eff.Config.Security.APIKeys.Backend {
		runtimeCfg.BackendKeys[k] = struct{}{}
	}
	for _, k := range eff.Config.Security.APIKeys.Admin {
		runtimeCfg.AdminKeys[k] = struct{}{}
	}
	config.SetRuntime(runtimeCfg)

	// validation rules
	validation.SetRules(validation.Rules{
		MaxMsgLen:      eff.Config.Limits.MaxMsgLen,
		MaxUsernameLen: eff.Config.Limits.MaxUsernameLen,
	})

	a := &App{eff: eff, version: version, commit: commit, buildDate: buildDate, repo: repo.New()}
	telemetry.RegisterRepoStats(a.repo.Stats)
	return a, nil
}

// Repo exposes the repository, mainly for tests.
func (a *App) Repo() *repo.Repo { return a.repo }

// Run starts the digest scheduler and the HTTP server, and blocks until
// ctx is canceled or a fatal server error occurs.
func (a *App) Run(ctx context.Context) error {
	cancelDigest, err := digest.Start(ctx, a.eff.Config.Digest, a.repo)
	if err != nil {
		return err
	}
	defer cancelDigest()

	a.printBanner()

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
