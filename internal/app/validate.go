package app

import (
	"fmt"
	"os"

	"github.com/adhocore/gronx"

	"chirpd/pkg/config"
)

// validateConfig performs quick, fail-fast validation of the effective
// configuration before starting long-running services. Keep checks light
// and focused so callers can surface user-friendly errors.
func validateConfig(eff config.EffectiveConfigResult) error {
	// TLS cert/key presence check if one is set
	cert := eff.Config.Server.TLS.CertFile
	key := eff.Config.Server.TLS.KeyFile
	if (cert != "" && key == "") || (cert == "" && key != "") {
		return fmt.Errorf("incomplete TLS configuration: both server.tls.cert_file and server.tls.key_file must be set")
	}
	if cert != "" {
		if _, err := os.Stat(cert); err != nil {
			return fmt.Errorf("tls cert file not accessible: %w", err)
		}
		if _, err := os.Stat(key); err != nil {
			return fmt.Errorf("tls key file not accessible: %w", err)
		}
	}

	if eff.Config.Security.RateLimit.RPS < 0 {
		return fmt.Errorf("security.rate_limit.rps must not be negative")
	}
	if eff.Config.Limits.MaxMsgLen < 0 || eff.Config.Limits.MaxUsernameLen < 0 {
		return fmt.Errorf("limits must not be negative")
	}

	if eff.Config.Digest.Enabled && eff.Config.Digest.Cron != "" {
		if !gronx.IsValid(eff.Config.Digest.Cron) {
			return fmt.Errorf("invalid digest cron expression: %s", eff.Config.Digest.Cron)
		}
	}

	return nil
}
