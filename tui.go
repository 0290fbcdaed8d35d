package rmxfret

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rapidmidiex/rmxfret/chordui"
	"github.com/rapidmidiex/rmxfret/fretboard"
	"github.com/rapidmidiex/rmxfret/keymap"
	"github.com/rapidmidiex/rmxfret/rmxerr"
	"github.com/rapidmidiex/rmxfret/scaleui"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/styles"
	"github.com/rapidmidiex/rmxfret/uimsg"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	Options struct {
		// State the UI opens with. Zero value means store.Initial.
		State *store.State
		// Fit the visible frets to the terminal width.
		FitWidth bool
		// Quiet period before a terminal resize is applied.
		ResizeDebounce time.Duration
		Logger         *slog.Logger
	}

	mainModel struct {
		store *store.Store
		state store.State

		scales scaleui.Model
		chords chordui.Model
		help   help.Model

		fitWidth bool
		onResize func(width int)
		curError string
		log      *slog.Logger
	}
)

func NewModel(s *store.Store, st store.State) mainModel {
	return mainModel{
		store:    s,
		state:    st,
		scales:   scaleui.New(s, st),
		chords:   chordui.New(s, st),
		help:     help.New(),
		onResize: func(int) {},
		log:      slog.Default(),
	}
}

// State returns the current fretboard state.
func (m mainModel) State() store.State { return m.state }

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.scales.Init(),
		m.chords.Init(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case rmxerr.ErrMsg:
		m.curError = msg.Error()
		return m, nil

	case uimsg.ActionMsg:
		return m.dispatch(msg.Action), nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.fitWidth {
			m.onResize(msg.Width)
		}
		return m, nil

	case uimsg.ResizedMsg:
		return m.dispatch(store.SetVisibleFrets{Frets: fretboard.VisibleFretsFor(msg.Width)}), nil

	case tea.KeyMsg:
		km := keymap.DefaultMapping
		switch {
		// Ctrl+c exits. Even with short running programs it's good to have
		// a quit key, just incase your logic is off. Users will be very
		// annoyed if they can't exit.
		case key.Matches(msg, km.Quit):
			return m, tea.Quit
		case key.Matches(msg, km.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, km.GoBack):
			m.curError = ""
			return m, nil
		case key.Matches(msg, km.SwitchMode):
			return m, uimsg.Dispatch(store.SetAppMode{Mode: nextMode(m.state.AppMode)})
		case key.Matches(msg, km.Instrument):
			return m, uimsg.Dispatch(store.SetInstrument{Instrument: nextInstrument(m.state.Instrument)})
		case key.Matches(msg, km.Strings):
			return m, uimsg.Dispatch(store.SetStringAmount{Amount: nextStringAmount(m.store.StringCounts(m.state), m.state.StringCount())})
		case key.Matches(msg, km.Tuning):
			tunings := m.store.Catalog().Tunings.ForInstrument(m.state.Instrument)
			return m, uimsg.Dispatch(store.SetTuning{Name: nextTuning(tunings, m.state.Tuning.Name)})
		case key.Matches(msg, km.View):
			return m, uimsg.Dispatch(store.SetViewOption{View: nextView(m.state.ViewOption)})
		case key.Matches(msg, km.MoreFrets):
			return m, uimsg.Dispatch(store.SetVisibleFrets{Frets: m.state.VisibleFrets + 1})
		case key.Matches(msg, km.LessFrets):
			if m.state.VisibleFrets <= fretboard.MinVisibleFrets {
				return m, nil
			}
			return m, uimsg.Dispatch(store.SetVisibleFrets{Frets: m.state.VisibleFrets - 1})
		}
	}

	// Call sub-model Updates
	switch m.state.AppMode {
	case store.ChordMode:
		var chords tea.Model
		chords, cmd = m.chords.Update(msg)
		m.chords = chords.(chordui.Model)
	default:
		var scales tea.Model
		scales, cmd = m.scales.Update(msg)
		m.scales = scales.(scaleui.Model)
	}

	// Run all commands from sub-model Updates
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m mainModel) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.RenderStatus(
		strings.ToUpper(m.state.AppMode.String()),
		string(m.state.Instrument),
		m.state.Tuning.Name,
		strings.Join(tuningNames(m.state), ""),
		fmt.Sprintf("frets %d-%d", m.state.StartFret, m.state.StartFret+m.state.VisibleFrets),
	) + "\n\n")

	switch m.state.AppMode {
	case store.ChordMode:
		doc.WriteString(m.chords.View())
	default:
		doc.WriteString(m.scales.View())
	}

	if m.curError != "" {
		doc.WriteString("\n" + styles.RenderError(m.curError))
	}

	// Help menu
	{
		doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(keymap.DefaultMapping)))
	}

	docStyle := styles.DocStyle
	if physicalWidth > 0 {
		docStyle = docStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

// dispatch reduces a and hands the new state to both views. A rejected
// action leaves the state alone and is shown as an error.
func (m mainModel) dispatch(a store.Action) mainModel {
	next, err := m.store.Reduce(m.state, a)
	if err != nil {
		m.log.Debug("action rejected", "action", fmt.Sprintf("%T", a), "error", err)
		m.curError = err.Error()
		return m
	}
	m.curError = ""
	m.state = next
	m.scales = m.scales.SetState(next)
	m.chords = m.chords.SetState(next)
	return m
}

// Run starts the TUI and blocks until the user quits.
func Run(s *store.Store, o Options) error {
	st, err := initialState(s, o)
	if err != nil {
		return err
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if o.FitWidth {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			if fitted, err := s.Reduce(st, store.SetVisibleFrets{Frets: fretboard.VisibleFretsFor(width)}); err == nil {
				st = fitted
			}
		}
	}

	m := NewModel(s, st)
	m.fitWidth = o.FitWidth
	m.log = logger

	var p *tea.Program
	debounced := debounce.New(o.ResizeDebounce)
	m.onResize = func(width int) {
		debounced(func() { p.Send(uimsg.ResizedMsg{Width: width}) })
	}
	p = tea.NewProgram(m, tea.WithAltScreen())

	logger.Info("tui started", "mode", st.AppMode.String(), "instrument", st.Instrument)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func initialState(s *store.Store, o Options) (store.State, error) {
	if o.State != nil {
		return *o.State, nil
	}
	st, err := s.Initial()
	if err != nil {
		return store.State{}, fmt.Errorf("initial state: %w", err)
	}
	return st, nil
}
