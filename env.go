package weblog

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

const developmentEnv = "development"

type runtimeEnv struct {
	AppEnv string `env:"APP_ENV"`
	GoEnv  string `env:"GO_ENV"`
}

// developmentMode reports whether the process environment declares a
// development deployment. APP_ENV wins over GO_ENV when both are set.
func developmentMode() bool {
	var vars runtimeEnv
	if err := env.Parse(&vars); err != nil {
		return false
	}

	if vars.AppEnv != emptyString {
		return strings.EqualFold(vars.AppEnv, developmentEnv)
	}
	return strings.EqualFold(vars.GoEnv, developmentEnv)
}
