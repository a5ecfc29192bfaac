package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.screen == screenConnect {
		return m.viewConnect()
	}
	return m.viewChat()
}

func (m Model) viewConnect() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("parley"))
	b.WriteString("\n\n")

	labels := []string{"server", "name", "channel"}
	for i, in := range m.form {
		b.WriteString("  ")
		b.WriteString(m.styles.formLabel.Render(labels[i]))
		b.WriteString("  ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n  tab: next field · enter: connect · esc: quit\n")
	return b.String()
}

func (m Model) viewChat() string {
	header := m.styles.header.Render("parley · #" + m.channel)

	sidebar := m.styles.sidebarHead.Render("online") + "\n"
	for _, u := range m.users {
		sidebar += u + "\n"
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.timeline.Render(m.timeline.View()),
		m.styles.sidebar.Render(sidebar),
	)

	input := m.styles.inputFrame.Render(m.entry.View())

	return header + "\n" + body + "\n" + input + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.statusErr {
		return m.styles.errStatus.Render(m.status)
	}
	return m.styles.status.Render(m.status)
}

// renderRows lays the timeline out: ungrouped messages get an author line
// with timestamp, verification badge and message identifier; grouped ones
// continue the block above; unconfirmed echoes render dimmed.
func (m Model) renderRows() string {
	var b strings.Builder
	for _, r := range m.rows {
		if !r.grouped {
			b.WriteString(m.styles.author.Render(r.creator))
			if r.trusted {
				b.WriteString(" " + m.styles.badge.Render("✔"))
			}
			b.WriteString(" " + m.styles.timestamp.Render(r.at.Local().Format("15:04:05")+" · "+r.id))
			b.WriteString("\n")
		}
		if r.unconfirmed {
			b.WriteString(m.styles.unconfirmed.Render(r.text))
		} else {
			b.WriteString(r.text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
