package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/intrale/brandkit/internal/domain"
)

type screen int

const (
	screenLoading screen = iota
	screenList
	screenDetail
	screenError
)

const maxTitleLen = 72

type issueItem struct {
	issue domain.Issue
}

func (i issueItem) Title() string {
	return fmt.Sprintf("#%d %s", i.issue.Number, clampString(i.issue.Title, maxTitleLen))
}
func (i issueItem) Description() string { return i.issue.URL }
func (i issueItem) FilterValue() string {
	return strconv.Itoa(i.issue.Number) + " " + i.issue.Title
}

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	errMsg string

	chosen *domain.Issue
}

// Run opens the issue browser. It returns the issue picked with enter, or
// ok=false when the user quit without choosing.
func Run(deps Deps) (issue domain.Issue, ok bool, err error) {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return domain.Issue{}, false, err
	}

	if sm, isSafe := final.(safeModel); isSafe && sm.m.chosen != nil {
		return *sm.m.chosen, true, nil
	}
	return domain.Issue{}, false, nil
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Todo"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenLoading,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadIssues(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case issuesLoadedMsg:
		if msg.err != nil {
			m.scr = screenError
			m.errMsg = userMessage(msg.err)
			return m, nil
		}

		items := make([]list.Item, 0, len(msg.issues))
		for _, is := range msg.issues {
			items = append(items, issueItem{issue: is})
		}
		m.list.Title = fmt.Sprintf("Todo (%d)", len(items))
		cmd := m.list.SetItems(items)
		m.scr = screenList
		return m, cmd

	case tea.KeyMsg:
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.scr == screenList || m.scr == screenDetail {
				if it, ok := m.list.SelectedItem().(issueItem); ok {
					is := it.issue
					m.chosen = &is
					return m, tea.Quit
				}
				return m, nil
			}

		case "i", "right":
			if m.scr == screenList {
				if _, ok := m.list.SelectedItem().(issueItem); ok {
					m.scr = screenDetail
				}
				return m, nil
			}

		case "esc", "b", "left":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}

		case "r":
			if m.scr == screenList || m.scr == screenError {
				m.scr = screenLoading
				m.errMsg = ""
				return m, cmdLoadIssues(m.deps)
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("brandkit board") + "\n" +
		m.theme.Subtitle.Render("Project issues in the Todo column") + "\n"

	switch m.scr {
	case screenLoading:
		return wrap.Render(header + "\n" + m.theme.Help.Render("Loading issues..."))

	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • i details • / search • r reload • q quit")
		if len(m.list.Items()) == 0 {
			return wrap.Render(header + "\n" + m.theme.Card.Render("No issues in Todo.") + "\n" + help)
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.list.View()) + "\n" + help)

	case screenDetail:
		it, _ := m.list.SelectedItem().(issueItem)
		card := m.theme.Card.Render(
			renderIssueDetails(it.issue) + "\n" +
				m.theme.Help.Render("enter open • esc/b back"),
		)
		return wrap.Render(header + "\n" + card)

	case screenError:
		card := m.theme.Card.Render(
			m.theme.Error.Render(m.errMsg) + "\n\n" +
				m.theme.Help.Render("r retry • q quit"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
