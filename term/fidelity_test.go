package term

import (
	"testing"

	"github.com/apparebit/prettypretty-sub000/style"
)

type fakeEnv map[string]string

func (f fakeEnv) lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

func TestDetectFidelitySequence(t *testing.T) {
	env := fakeEnv{}
	want := func(f style.Fidelity) {
		t.Helper()
		if got := detectFidelity(env, true); got != f {
			t.Errorf("detectFidelity(%v) = %v, want %v", env, got, f)
		}
	}

	want(style.Plain)

	env["TERM"] = "cygwin"
	want(style.FidelityAnsi)

	env["TERM_PROGRAM"] = "iTerm.app"
	want(style.Fidelity8Bit)

	env["TERM_PROGRAM_VERSION"] = "3.5"
	want(style.Fidelity24Bit)

	env["COLORTERM"] = "truecolor"
	want(style.Fidelity24Bit)

	env["CI"] = ""
	env["APPVEYOR"] = ""
	want(style.FidelityAnsi)

	env["TF_BUILD"] = ""
	want(style.FidelityAnsi)

	env["NO_COLOR"] = ""
	want(style.FidelityAnsi)

	env["NO_COLOR"] = "1"
	want(style.NoColor)
}

func TestDetectFidelityNoTTYIsPlain(t *testing.T) {
	env := fakeEnv{"COLORTERM": "truecolor"}
	if got := detectFidelity(env, false); got != style.Plain {
		t.Errorf("detectFidelity(no tty) = %v, want plain", got)
	}
}

func TestDetectFidelityGithubActionsIs24Bit(t *testing.T) {
	env := fakeEnv{"CI": "true", "GITHUB_ACTIONS": "true"}
	if got := detectFidelity(env, true); got != style.Fidelity24Bit {
		t.Errorf("detectFidelity(github actions) = %v, want 24-bit", got)
	}
}

func TestDetectFidelityTeamCityMajorNine(t *testing.T) {
	env := fakeEnv{"TEAMCITY_VERSION": "9.1.2"}
	if got := detectFidelity(env, true); got != style.FidelityAnsi {
		t.Errorf("detectFidelity(teamcity 9) = %v, want ansi", got)
	}
}
