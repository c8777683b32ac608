package service

import (
	"strings"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

const (
	sourceRemote = "remote"
	sourceLocal  = "local"
)

// resolveIdentity turns the request identity signal into a stable user
// identifier plus its source. No authentication happens here: the header's
// integrity is guaranteed by the reverse proxy in front of the service.
func resolveIdentity(identity ports.Identity, cfg *domain.Config) (string, string, error) {
	if cfg.UseRemoteAuth {
		userID := strings.ToLower(strings.TrimSpace(identity.RemoteUser))
		if userID == "" {
			return "", sourceRemote, domain.ErrIdentityRequired
		}
		return userID, sourceRemote, nil
	}
	if !cfg.HasUser(domain.LocalUserID) {
		return "", sourceLocal, domain.ErrDefaultUserMissing
	}
	return domain.LocalUserID, sourceLocal, nil
}
