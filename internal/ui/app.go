package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plugview/plugview/internal/catalog"
	"github.com/plugview/plugview/internal/prefs"
)

// Layout rows above and below the table: title bar, search bar, column
// header, status line, footer.
const chromeRows = 5

// headerRowY is the terminal row of the column header, used for mouse
// hit-testing.
const headerRowY = 2

// noticeTTL is how long a transient notification stays visible.
const noticeTTL = 5 * time.Second

// Options configures the UI.
type Options struct {
	Store     *catalog.Store
	LoadErr   error
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. It owns the
// controller (view state machine) and the widgets around it; all
// domain behavior lives behind controller.Apply.
type Model struct {
	controller *Controller
	keys       keyMap
	search     textinput.Model
	helpBar    help.Model
	theme      Theme
	prefsPath  string

	// degraded is set when the initial load failed; the title and
	// status reflect it for the whole session.
	degraded bool

	width  int
	height int
	ready  bool

	// cursor indexes into the visible subset; offset is the scroll
	// window start.
	cursor int
	offset int

	showHelp bool

	notice    string
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = catalog.NewStore(nil)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search plugins... (name, manufacturer, description)"
	search.Prompt = "/ "

	m := Model{
		controller: NewController(store),
		keys:       DefaultKeyMap(),
		search:     search,
		helpBar:    help.New(),
		theme:      GetTheme(themeName),
		prefsPath:  prefsPath,
	}

	if opts.LoadErr != nil {
		m.degraded = true
		m.notice = "Error loading plugins: " + opts.LoadErr.Error()
		m.noticeSeq = 1
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.notice != "" {
		cmds = append(cmds, expireNoticeCmd(m.noticeSeq))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = msg.Width - 6
		m.helpBar.Width = msg.Width
		m.clampScroll()
		return m, nil

	case noticeExpiredMsg:
		if int(msg) == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	widths := columnWidths(m.width)

	return strings.Join([]string{
		m.renderTitleBar(),
		m.renderSearchBar(),
		m.renderColumnHeader(widths),
		m.renderTable(widths, m.tableRows()),
		m.renderStatusLine(),
		m.renderFooter(),
	}, "\n")
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay: any key closes it.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the search field has focus, keystrokes go to it; only
	// enter, esc, and ctrl+c are intercepted.
	if m.search.Focused() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.search.Blur()
			m.controller.Apply(SearchSubmitted{Text: m.search.Value()})
			m.clampScroll()
			return m, nil

		case key.Matches(msg, m.keys.Cancel):
			m.search.Blur()
			return m, nil

		case msg.String() == "ctrl+c":
			m.controller.Apply(QuitRequested{})
			return m, tea.Quit
		}

		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if after := m.search.Value(); after != before {
			m.controller.Apply(SearchTextChanged{Text: after})
			m.clampScroll()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Apply(QuitRequested{})
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		m.controller.Apply(FocusSearchRequested{})
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		m.search.SetValue("")
		m.controller.Apply(ClearSearch{})
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.SortColumn):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(catalog.Fields) {
			m.controller.Apply(ColumnSelected{Field: catalog.Fields[idx]})
		}
		return m, nil
	}

	return m.handleNavigation(msg), nil
}

// handleNavigation moves the cursor within the visible subset.
func (m Model) handleNavigation(msg tea.KeyMsg) Model {
	rows := m.tableRows()
	last := m.controller.Shown() - 1
	if last < 0 {
		return m
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = last
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += rows
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= rows
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cursor += rows / 2
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cursor -= rows / 2
	}

	m.clampScroll()
	return m
}

// handleMouse maps clicks to column selection and row movement, and
// wheel events to scrolling.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor--
		m.clampScroll()
		return m, nil

	case tea.MouseButtonWheelDown:
		m.cursor++
		m.clampScroll()
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if msg.Y == headerRowY {
			if field, ok := columnAt(msg.X, columnWidths(m.width)); ok {
				m.controller.Apply(ColumnSelected{Field: field})
			}
			return m, nil
		}
		if row := msg.Y - headerRowY - 1; row >= 0 && row < m.tableRows() {
			if idx := m.offset + row; idx < m.controller.Shown() {
				m.cursor = idx
			}
		}
		return m, nil
	}

	return m, nil
}

// tableRows returns how many record rows fit in the current window.
func (m Model) tableRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampScroll keeps the cursor in range and the scroll window around
// it after any change to the visible subset or window size.
func (m *Model) clampScroll() {
	shown := m.controller.Shown()
	if shown == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}

	if m.cursor >= shown {
		m.cursor = shown - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.tableRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset > shown-rows {
		m.offset = shown - rows
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Messages

type noticeExpiredMsg int

// Commands

func expireNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg(seq)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
