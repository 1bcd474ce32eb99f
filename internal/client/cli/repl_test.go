package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	signedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isSignedIn() bool { return f.signedIn }
func (f *fakeExec) Observe(ctx context.Context, seed string) error {
	f.calls = append(f.calls, "observe")
	f.arg = seed
	return nil
}
func (f *fakeExec) Regen(ctx context.Context) error { f.calls = append(f.calls, "regen"); return nil }
func (f *fakeExec) List(ctx context.Context) error  { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	f.calls = append(f.calls, "show")
	f.arg = id
	return nil
}
func (f *fakeExec) Fav(ctx context.Context, id string) error {
	f.calls = append(f.calls, "fav")
	f.arg = id
	return nil
}
func (f *fakeExec) Challenge(ctx context.Context, sub string) error {
	f.calls = append(f.calls, "challenge")
	f.arg = sub
	return nil
}
func (f *fakeExec) Streak(ctx context.Context) error { f.calls = append(f.calls, "streak"); return nil }
func (f *fakeExec) Badges(ctx context.Context) error { f.calls = append(f.calls, "badges"); return nil }
func (f *fakeExec) Mindful(ctx context.Context) error {
	f.calls = append(f.calls, "mindful")
	return nil
}
func (f *fakeExec) Settings(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "settings")
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.signedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.signedIn = false
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "deleteaccount")
	return nil
}
func (f *fakeExec) Share(ctx context.Context, id string) error {
	f.calls = append(f.calls, "share")
	f.arg = id
	return nil
}
func (f *fakeExec) Open(ctx context.Context, rawURL string) error {
	f.calls = append(f.calls, "open")
	f.arg = rawURL
	return nil
}
func (f *fakeExec) Export(ctx context.Context, path string) error {
	f.calls = append(f.calls, "export")
	f.arg = path
	return nil
}
func (f *fakeExec) Community(ctx context.Context) error {
	f.calls = append(f.calls, "community")
	return nil
}
func (f *fakeExec) TestEmail(ctx context.Context) error {
	f.calls = append(f.calls, "testemail")
	return nil
}

func TestRunREPL_CommandFlow(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"challenge start",
		"observe",
		"list",
		"show 42",
		"fav 42",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "challenge", "observe", "list", "show", "fav"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "42" {
		t.Fatalf("last arg = %q, want 42", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	// Bare commands that need an argument print usage and call nothing.
	input := strings.NewReader("show\nfav\nshare\nopen\nquit\n")
	exec := &fakeExec{signedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
