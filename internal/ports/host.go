package ports

import "github.com/raji2203030/livebot/internal/domain"

// HostProvider exposes the environment interpreter resolution runs against.
type HostProvider interface {
	Host() domain.Host
}
