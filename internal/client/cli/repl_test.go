package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Profile(context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) Passwd(context.Context) error { f.calls = append(f.calls, "passwd"); return nil }

// captureOutput replaces printlnFn and returns the printed lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"",
		"help",
		"login",
		"help",
		"whoami",
		"profile",
		"passwd",
		"logout",
		"register",
		"bogus arg",
		"exit",
		"login",
	}, "\n") + "\n"

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{"login", "whoami", "profile", "passwd", "logout", "register"}, f.calls)
	assert.Contains(t, *out, "Available commands: register, login, help, exit")
	assert.Contains(t, *out, "Available commands: whoami, profile, passwd, logout, help, exit")
	assert.Contains(t, *out, "Unknown command: bogus")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, rdr("quit-not\nwhoami"))

	assert.Equal(t, []string{"whoami"}, f.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(Ann)" }, rdr("quit\n"))

	assert.Equal(t, "school (Ann)> ", (*out)[0])
}
