package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cmagno/acervo/internal/session"
)

// pane identifies which side of the screen owns the keyboard.
type pane int

const (
	paneFilter pane = iota
	paneBrowse
)

// rowKind tags one line of the flattened browse structure.
type rowKind int

const (
	rowCategory rowKind = iota
	rowConcept
	rowRecord
	rowLoadMore
)

// row is one navigable entry in the browse pane.
type row struct {
	kind     rowKind
	category string
	concept  string
	rec      session.RecordView // valid for rowRecord
	shown    int                // valid for rowLoadMore
	total    int
}

// AppConfig carries the injected command factories. Commands only do
// file and database IO; all session mutation happens in Update, so one
// user action at a time touches state.
type AppConfig struct {
	LoadTable    func(path string) tea.Cmd        // -> TableLoaded
	LoadProgress func(path string) tea.Cmd        // -> ProgressFileLoaded
	WriteExport  func(data []byte) tea.Cmd        // -> ProgressExported
	Flush        func(m map[string]bool) tea.Cmd  // -> ProgressFlushed
}

// App is the root Bubble Tea model. It owns the Session and serializes
// every user action through Update, one message at a time.
type App struct {
	sess *session.Session
	cfg  AppConfig

	focus     pane
	filterIdx int
	browseIdx int

	importing bool
	pathInput textinput.Model
	spin      spinner.Model
	loading   bool

	status string
	err    error
	width  int
	height int
	ready  bool
}

// NewApp creates the root model around a session.
func NewApp(sess *session.Session, cfg AppConfig) App {
	ti := textinput.New()
	ti.Placeholder = "caminho do arquivo de progresso (.json)"
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F46E5"))

	return App{sess: sess, cfg: cfg, pathInput: ti, spin: sp}
}

// Init starts the spinner; the initial table load is injected by main
// as a message when a file was passed on the command line.
func (a App) Init() tea.Cmd {
	return a.spin.Tick
}

// Update handles messages and returns the updated model and commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case TableLoaded:
		a.loading = false
		if msg.Err != nil {
			// Failed ingest leaves all prior state untouched.
			a.err = msg.Err
			return a, nil
		}
		a.sess.Ingest(msg.Records)
		a.err = nil
		a.filterIdx = 0
		a.browseIdx = 0
		a.status = fmt.Sprintf("%d registros carregados de %s", len(msg.Records), msg.Path)
		return a, nil

	case ProgressFileLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		count, err := a.sess.Progress().ImportMerge(msg.Data)
		if err != nil {
			a.err = err
			return a, nil
		}
		a.err = nil
		a.status = fmt.Sprintf("progresso importado: %d chaves", count)
		return a, a.flushCmd()

	case ProgressExported:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.err = nil
			a.status = "progresso exportado: " + msg.Path
		}
		return a, nil

	case ProgressFlushed:
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, nil
	}

	if a.importing {
		var cmd tea.Cmd
		a.pathInput, cmd = a.pathInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.importing {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(a.pathInput.Value())
			a.importing = false
			a.pathInput.Blur()
			a.pathInput.SetValue("")
			if path == "" || a.cfg.LoadProgress == nil {
				return a, nil
			}
			return a, a.cfg.LoadProgress(path)
		case "esc":
			a.importing = false
			a.pathInput.Blur()
			a.pathInput.SetValue("")
			return a, nil
		}
		var cmd tea.Cmd
		a.pathInput, cmd = a.pathInput.Update(msg)
		return a, cmd
	}

	// Any keypress dismisses a shown error.
	if a.err != nil {
		a.err = nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		if a.focus == paneFilter {
			a.focus = paneBrowse
		} else {
			a.focus = paneFilter
		}
		return a, nil

	case "e":
		return a.handleExport()

	case "i":
		a.importing = true
		a.pathInput.Focus()
		return a, textinput.Blink

	case "j", "down":
		a.moveCursor(1)
		return a, nil

	case "k", "up":
		a.moveCursor(-1)
		return a, nil

	case "g", "home":
		a.setCursor(0)
		return a, nil

	case "G", "end":
		a.setCursor(1 << 30)
		return a, nil

	case " ":
		return a.handleSpace()

	case "enter":
		return a.handleEnter()
	}

	return a, nil
}

// moveCursor shifts the focused pane's cursor, clamped to its extent.
func (a *App) moveCursor(delta int) {
	if a.focus == paneFilter {
		a.filterIdx = clamp(a.filterIdx+delta, 0, len(a.sess.Categories())-1)
		return
	}
	a.browseIdx = clamp(a.browseIdx+delta, 0, len(a.rows())-1)
}

func (a *App) setCursor(i int) {
	if a.focus == paneFilter {
		a.filterIdx = clamp(i, 0, len(a.sess.Categories())-1)
		return
	}
	a.browseIdx = clamp(i, 0, len(a.rows())-1)
}

// handleExport snapshots the progress map synchronously and hands the
// encoded blob to the write command.
func (a App) handleExport() (tea.Model, tea.Cmd) {
	if a.cfg.WriteExport == nil {
		return a, nil
	}
	data, err := a.sess.Progress().Export()
	if err != nil {
		a.err = err
		return a, nil
	}
	return a, a.cfg.WriteExport(data)
}

// handleSpace toggles the filter entry or the record under the cursor.
func (a App) handleSpace() (tea.Model, tea.Cmd) {
	if a.focus == paneFilter {
		cats := a.sess.Categories()
		if a.filterIdx < len(cats) {
			a.sess.ToggleCategory(cats[a.filterIdx])
			a.browseIdx = 0
		}
		return a, nil
	}

	rows := a.rows()
	if a.browseIdx < len(rows) && rows[a.browseIdx].kind == rowRecord {
		r := rows[a.browseIdx].rec
		a.sess.ToggleRead(r.Key, !r.Read)
		return a, a.flushCmd()
	}
	return a, nil
}

// handleEnter reveals more records when the cursor sits on a load-more
// row.
func (a App) handleEnter() (tea.Model, tea.Cmd) {
	if a.focus != paneBrowse {
		return a, nil
	}
	rows := a.rows()
	if a.browseIdx < len(rows) && rows[a.browseIdx].kind == rowLoadMore {
		r := rows[a.browseIdx]
		a.sess.RevealMore(r.category, r.concept)
	}
	return a, nil
}

func (a App) flushCmd() tea.Cmd {
	if a.cfg.Flush == nil {
		return nil
	}
	return a.cfg.Flush(a.sess.Progress().Snapshot())
}

// rows flattens the session view into navigable lines. Rebuilt per
// call; the view is small and this keeps cursor math trivial.
func (a App) rows() []row {
	var out []row
	for _, cat := range a.sess.View() {
		out = append(out, row{kind: rowCategory, category: cat.Name})
		for _, conc := range cat.Concepts {
			out = append(out, row{kind: rowConcept, category: cat.Name, concept: conc.Name})
			for _, rec := range conc.Records {
				out = append(out, row{kind: rowRecord, category: cat.Name, concept: conc.Name, rec: rec})
			}
			if conc.HasMore {
				out = append(out, row{
					kind: rowLoadMore, category: cat.Name, concept: conc.Name,
					shown: conc.Shown, total: conc.Total,
				})
			}
		}
	}
	return out
}

// BrowseCursor returns the browse cursor position (for testing).
func (a App) BrowseCursor() int {
	return a.browseIdx
}

// Session returns the underlying session (for testing).
func (a App) Session() *session.Session {
	return a.sess
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
