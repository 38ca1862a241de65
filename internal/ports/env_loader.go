package ports

import "github.com/raji2203030/livebot/internal/domain"

// EnvLoader reads extra variables for the launched application.
type EnvLoader interface {
	LoadEnv(path string) (domain.Vars, error)
}
