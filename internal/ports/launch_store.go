package ports

import "github.com/raji2203030/livebot/internal/domain"

// LaunchStore persists launch records.
type LaunchStore interface {
	SaveLaunch(rec domain.LaunchRecord) (id string, err error)
}
