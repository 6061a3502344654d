package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/intrale/brandkit/internal/domain"
)

type stubLister struct {
	issues []domain.Issue
	err    error
	got    domain.StatusFilter
}

func (s *stubLister) Execute(_ context.Context, filter domain.StatusFilter) ([]domain.Issue, error) {
	s.got = filter
	return s.issues, s.err
}

var sampleIssues = []domain.Issue{
	{Number: 7, Title: "Splash screen colors", URL: "https://github.com/intrale/platform/issues/7"},
	{Number: 12, Title: "Deeplink host per brand", URL: "https://github.com/intrale/platform/issues/12"},
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

func TestCmdLoadIssuesPassesFilter(t *testing.T) {
	lister := &stubLister{issues: sampleIssues}
	filter := domain.StatusFilter{FieldID: "status", OptionID: "todo"}

	msg := cmdLoadIssues(Deps{Issues: lister, Filter: filter})()
	loaded, ok := msg.(issuesLoadedMsg)
	if !ok {
		t.Fatalf("expected issuesLoadedMsg, got %T", msg)
	}
	if loaded.err != nil || len(loaded.issues) != 2 {
		t.Fatalf("unexpected result: %+v", loaded)
	}
	if lister.got != filter {
		t.Fatalf("expected filter to be forwarded, got %+v", lister.got)
	}
}

type ctxLister struct{}

func (ctxLister) Execute(ctx context.Context, _ domain.StatusFilter) ([]domain.Issue, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestCmdLoadIssuesHonorsParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := cmdLoadIssues(Deps{Ctx: ctx, Issues: ctxLister{}})().(issuesLoadedMsg)
	if !errors.Is(msg.err, context.Canceled) {
		t.Fatalf("expected canceled load, got %v", msg.err)
	}
}

func TestCmdLoadIssuesWithoutLister(t *testing.T) {
	msg := cmdLoadIssues(Deps{})().(issuesLoadedMsg)
	if msg.err == nil {
		t.Fatalf("expected error for missing lister")
	}
}

func TestEnterChoosesSelectedIssue(t *testing.T) {
	m := newModel(Deps{})
	m, _ = update(t, m, issuesLoadedMsg{issues: sampleIssues})

	if m.scr != screenList {
		t.Fatalf("expected list screen, got %d", m.scr)
	}
	if len(m.list.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.list.Items()))
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.chosen == nil || m.chosen.Number != 7 {
		t.Fatalf("expected first issue to be chosen, got %+v", m.chosen)
	}
}

func TestDetailAndBack(t *testing.T) {
	m := newModel(Deps{})
	m, _ = update(t, m, issuesLoadedMsg{issues: sampleIssues})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if m.scr != screenDetail {
		t.Fatalf("expected detail screen, got %d", m.scr)
	}
	if !strings.Contains(m.View(), "issues/7") {
		t.Fatalf("expected detail view to show the URL")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenList {
		t.Fatalf("expected list screen after esc, got %d", m.scr)
	}
}

func TestLoadErrorShowsMessage(t *testing.T) {
	m := newModel(Deps{})
	err := &domain.OpError{Op: "githubgql.new", Kind: domain.KindInvalidConfig, Err: errors.New("GITHUB_TOKEN is not set")}
	m, _ = update(t, m, issuesLoadedMsg{err: err})

	if m.scr != screenError {
		t.Fatalf("expected error screen, got %d", m.scr)
	}
	if m.errMsg != "GITHUB_TOKEN is not set" {
		t.Fatalf("unexpected message %q", m.errMsg)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.scr != screenLoading || cmd == nil {
		t.Fatalf("expected reload to start")
	}
}

func TestEmptyListView(t *testing.T) {
	m := newModel(Deps{})
	m, _ = update(t, m, issuesLoadedMsg{issues: []domain.Issue{}})

	if !strings.Contains(m.View(), "No issues in Todo.") {
		t.Fatalf("expected empty message")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.chosen != nil {
		t.Fatalf("enter on empty list must be a no-op")
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&domain.OpError{Op: "githubgql.decode", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Project not found (check INTRALE_PROJECT_ID)"},
		{&domain.OpError{Op: "githubgql.request", Kind: domain.KindExecution, Err: errors.New("unexpected status 401: bad credentials")}, "GitHub rejected the token"},
		{&domain.OpError{Op: "settings.validate", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig}, "Invalid board configuration"},
		{context.DeadlineExceeded, "Board request timed out"},
		{errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("Deeplink host", 8); got != "Deeplink…" {
		t.Fatalf("unexpected clamp %q", got)
	}
	if got := clampString("short", 8); got != "short" {
		t.Fatalf("unexpected clamp %q", got)
	}
}
