package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"parley/internal/domain"
	"parley/internal/emote"
	"parley/internal/prefs"
)

// Engine is the slice of the sync service the UI drives.
type Engine interface {
	Connect(endpoint, channel string, self domain.Profile)
	Disconnect()
	Send(ctx context.Context, text string) error
	RequestVerification(id string)
}

type screen int

const (
	screenConnect screen = iota
	screenChat
)

// row is one rendered timeline entry.
type row struct {
	id          string
	creator     string
	text        string
	at          time.Time
	trusted     bool
	grouped     bool
	unconfirmed bool
}

type sendDoneMsg struct {
	text string
	err  error
}

// Model is the Bubble Tea model for the whole client.
type Model struct {
	engine    Engine
	presenter *Presenter
	prefs     *prefs.Store
	publicKey string

	screen    screen
	status    string
	statusErr bool
	channel   string
	connected bool

	// connect form
	form      []textinput.Model // server, name, channel
	formIndex int

	// chat
	entry    textinput.Model
	timeline viewport.Model
	rows     []row
	users    []string

	width  int
	height int
	styles uiStyles
}

// New builds the initial model. publicKey is the local identity's hex key;
// the display name comes from the connect form.
func New(engine Engine, presenter *Presenter, store *prefs.Store, publicKey string) Model {
	server := textinput.New()
	server.Placeholder = "http://localhost:8080"
	server.SetValue(store.GetString("server", ""))
	server.Focus()

	name := textinput.New()
	name.Placeholder = "display name"
	name.SetValue(store.GetString("username", ""))

	channel := textinput.New()
	channel.Placeholder = "channel"
	channel.SetValue(store.GetString("channel", ""))

	entry := textinput.New()
	entry.Placeholder = "message (#shrug expands; /verify <id> to trust an author)"
	entry.CharLimit = 2000

	return Model{
		engine:    engine,
		presenter: presenter,
		prefs:     store,
		publicKey: publicKey,
		screen:    screenConnect,
		status:    "enter connection details",
		form:      []textinput.Model{server, name, channel},
		entry:     entry,
		timeline:  viewport.New(0, 0),
		styles:    newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshTimeline(false)
		return m, nil

	case LifecycleMsg:
		return m.onLifecycle(domain.LifecycleEvent(msg)), nil

	case ActionsMsg:
		return m.onActions(msg), nil

	case sendDoneMsg:
		if msg.err != nil {
			// Keep the composed text so the user can retry.
			m.status, m.statusErr = "send failed: "+msg.err.Error(), true
			return m, nil
		}
		if m.entry.Value() == msg.text {
			m.entry.SetValue("")
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.engine.Disconnect()
		return m, tea.Quit
	case "esc":
		if m.screen == screenChat {
			m.engine.Disconnect()
			m.screen = screenConnect
			m.status, m.statusErr = "disconnected", false
			return m, nil
		}
		m.engine.Disconnect()
		return m, tea.Quit
	}

	if m.screen == screenConnect {
		return m.onFormKey(msg)
	}
	return m.onChatKey(msg)
}

func (m Model) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusForm((m.formIndex + 1) % len(m.form))
		return m, nil
	case "shift+tab", "up":
		m.focusForm((m.formIndex + len(m.form) - 1) % len(m.form))
		return m, nil
	case "enter":
		server := strings.TrimSpace(m.form[0].Value())
		name := strings.TrimSpace(m.form[1].Value())
		channel := strings.TrimSpace(m.form[2].Value())
		if server == "" || name == "" || channel == "" {
			m.status, m.statusErr = "server, name, and channel are all required", true
			return m, nil
		}

		m.prefs.SetString("server", server)
		m.prefs.SetString("username", name)
		m.prefs.SetString("channel", channel)
		if err := m.prefs.Save(); err != nil {
			m.status, m.statusErr = "saving prefs: "+err.Error(), true
		}

		// Fresh session: drop everything rendered for the previous one.
		m.rows = nil
		m.users = nil
		m.refreshTimeline(false)

		m.engine.Connect(server, channel, domain.Profile{Name: name, PublicKey: m.publicKey})
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) onChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		text := strings.TrimSpace(m.entry.Value())
		if text == "" {
			return m, nil
		}
		if id, ok := strings.CutPrefix(text, "/verify "); ok {
			m.engine.RequestVerification(strings.TrimSpace(id))
			m.entry.SetValue("")
			m.status, m.statusErr = "verification requested", false
			return m, nil
		}
		expanded := emote.Expand(text)
		engine := m.engine
		return m, func() tea.Msg {
			return sendDoneMsg{text: text, err: engine.Send(context.Background(), expanded)}
		}
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.screen == screenConnect {
		m.form[m.formIndex], cmd = m.form[m.formIndex].Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.entry, cmd = m.entry.Update(msg)
		cmds = append(cmds, cmd)
		m.timeline, cmd = m.timeline.Update(msg)
		cmds = append(cmds, cmd)
		m.presenter.setAtBottom(m.timeline.AtBottom())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) focusForm(i int) {
	m.form[m.formIndex].Blur()
	m.formIndex = i
	m.form[i].Focus()
}

func (m Model) onLifecycle(ev domain.LifecycleEvent) Model {
	switch ev.Kind {
	case domain.Connecting:
		m.status, m.statusErr = "connecting...", false
	case domain.Connected:
		m.screen = screenChat
		m.connected = true
		m.channel = ev.Channel
		m.status, m.statusErr = "connected to #"+ev.Channel, false
		m.entry.Focus()
		m.resize()
	case domain.ConnectionFailed:
		m.screen = screenConnect
		m.connected = false
		m.status, m.statusErr = "connection failed", true
	case domain.Disconnected:
		m.connected = false
		m.status, m.statusErr = "disconnected", false
	}
	return m
}

func (m Model) onActions(batch ActionsMsg) Model {
	scroll := false
	for _, a := range batch {
		switch a := a.(type) {
		case domain.NewMessage:
			m.rows = append(m.rows, row{
				id:          a.ID,
				creator:     a.Creator,
				text:        a.Text,
				at:          a.CreatedAt,
				trusted:     a.Trusted,
				grouped:     a.Grouped,
				unconfirmed: a.Unconfirmed,
			})
			scroll = scroll || a.ScrollToBottom
		case domain.ResolveEcho:
			for i := range m.rows {
				if m.rows[i].id == a.Handle {
					m.rows[i].unconfirmed = false
					break
				}
			}
		case domain.ReplaceUserList:
			if !equalStrings(m.users, a.Names) {
				m.users = a.Names
			}
		}
	}
	m.refreshTimeline(scroll)
	return m
}

func (m *Model) refreshTimeline(scroll bool) {
	m.timeline.SetContent(m.renderRows())
	if scroll {
		m.timeline.GotoBottom()
	}
	m.presenter.setAtBottom(m.timeline.AtBottom())
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	sidebarWidth := 24
	frame := 4 // borders and padding
	m.timeline.Width = m.width - sidebarWidth - frame
	m.timeline.Height = m.height - 6
	if m.timeline.Height < 3 {
		m.timeline.Height = 3
	}
	m.entry.Width = m.width - frame
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
