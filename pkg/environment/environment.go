package environment

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// ErrInvalidEnvironment is returned by Parse for unknown names.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Members lists the declared environments.
func (Environment) Members() []Environment {
	return []Environment{Development, Staging, Production}
}

func (e Environment) String() string {
	return string(e)
}

var aliases = map[string]Environment{
	"dev":   Development,
	"stage": Staging,
	"prod":  Production,
}

// Parse resolves an environment name. Matching is case-insensitive and
// accepts the short aliases dev, stage and prod.
func Parse(name string) (Environment, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if env, ok := aliases[name]; ok {
		return env, nil
	}
	env, err := guard.NotInEnum("environment", Environment(name))
	if err != nil {
		return "", errors.Join(ErrInvalidEnvironment, err)
	}
	return env, nil
}
