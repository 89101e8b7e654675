package term

import (
	"os"
	"strings"

	"github.com/apparebit/prettypretty-sub000/style"
)

// environment abstracts environment-variable lookup so fidelity
// detection can be tested against fixed variable sets instead of the
// process's real environment.
type environment interface {
	lookup(key string) (string, bool)
}

type osEnvironment struct{}

func (osEnvironment) lookup(key string) (string, bool) { return os.LookupEnv(key) }

func isDefined(env environment, key string) bool {
	_, ok := env.lookup(key)
	return ok
}

func isNonEmpty(env environment, key string) bool {
	v, ok := env.lookup(key)
	return ok && v != ""
}

func hasValue(env environment, key, want string) bool {
	v, ok := env.lookup(key)
	return ok && v == want
}

// DetectFidelity determines a terminal's styling fidelity from process
// environment variables and whether standard output is a terminal,
// following the precedence chain pioneered by Chalk's supports-color
// and refined by the NO_COLOR/FORCE_COLOR conventions.
func DetectFidelity(hasTTY bool) style.Fidelity {
	return detectFidelity(osEnvironment{}, hasTTY)
}

func detectFidelity(env environment, hasTTY bool) style.Fidelity {
	switch {
	case isNonEmpty(env, "NO_COLOR"):
		return style.NoColor
	case isNonEmpty(env, "FORCE_COLOR"):
		return style.FidelityAnsi
	case isDefined(env, "TF_BUILD") || isDefined(env, "AGENT_NAME"):
		return style.FidelityAnsi
	case !hasTTY:
		return style.Plain
	case hasValue(env, "TERM", "dumb"):
		return style.Plain
	case isDefined(env, "CI"):
		return fidelityFromCI(env)
	}

	if v, ok := env.lookup("TEAMCITY_VERSION"); ok {
		return fidelityFromTeamCity(v)
	}
	if hasValue(env, "COLORTERM", "truecolor") || hasValue(env, "TERM", "xterm-kitty") {
		return style.Fidelity24Bit
	}
	if hasValue(env, "TERM_PROGRAM", "Apple_Terminal") {
		return style.Fidelity8Bit
	}
	if hasValue(env, "TERM_PROGRAM", "iTerm.app") {
		if v, ok := env.lookup("TERM_PROGRAM_VERSION"); ok && strings.HasPrefix(v, "3.") {
			return style.Fidelity24Bit
		}
		return style.Fidelity8Bit
	}

	if term, ok := env.lookup("TERM"); ok {
		return fidelityFromTermName(strings.ToLower(term))
	}
	if isDefined(env, "COLORTERM") {
		return style.FidelityAnsi
	}
	return style.Plain
}

func fidelityFromCI(env environment) style.Fidelity {
	if isDefined(env, "GITHUB_ACTIONS") || isDefined(env, "GITEA_ACTIONS") {
		return style.Fidelity24Bit
	}
	for _, ci := range []string{"TRAVIS", "CIRCLECI", "APPVEYOR", "GITLAB_CI", "BUILDKITE", "DRONE"} {
		if isDefined(env, ci) {
			return style.FidelityAnsi
		}
	}
	if hasValue(env, "CI_NAME", "codeship") {
		return style.FidelityAnsi
	}
	return style.Plain
}

// fidelityFromTeamCity implements TeamCity's ANSI support starting at
// major version 9.
func fidelityFromTeamCity(version string) style.Fidelity {
	if len(version) >= 2 && version[0] == '9' && version[1] == '.' {
		return style.FidelityAnsi
	}
	if len(version) >= 3 && version[0] >= '1' && version[0] <= '9' && isDigit(version[1]) && version[2] == '.' {
		return style.FidelityAnsi
	}
	return style.Plain
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func fidelityFromTermName(term string) style.Fidelity {
	if strings.HasSuffix(term, "-256") || strings.HasSuffix(term, "-256color") {
		return style.Fidelity8Bit
	}
	prefixes := []string{"screen", "xterm", "vt100", "vt220", "rxvt"}
	for _, p := range prefixes {
		if strings.HasPrefix(term, p) {
			return style.FidelityAnsi
		}
	}
	switch term {
	case "color", "ansi", "cygwin", "linux":
		return style.FidelityAnsi
	}
	return style.Plain
}
