package tui

import "github.com/charmbracelet/lipgloss"

// NoticeKind identifies the type of a notice.
type NoticeKind int

const (
	// NoticeWarn reports a validation failure or a failed action.
	NoticeWarn NoticeKind = iota
	// NoticeInfo reports a successful action.
	NoticeInfo
	// NoticeReveal shows a one-time secret with a label.
	NoticeReveal
)

// Notice is a blocking message shown to the operator. It captures all
// input until dismissed.
type Notice struct {
	Kind  NoticeKind
	Text  string
	Label string
	Value string
}

// Notifier surfaces blocking messages to the operator. Views call it
// instead of rendering dialogs themselves, so tests can record calls.
type Notifier interface {
	// Warn reports a validation failure or a failed action.
	Warn(text string)
	// Info reports a successful action.
	Info(text string)
	// Reveal shows a one-time secret (an enrollment token) with a label.
	Reveal(label, value string)
}

// NoticeBoard is the production Notifier: it holds the active notice,
// which the model renders as a modal overlay.
type NoticeBoard struct {
	active *Notice
}

// Ensure NoticeBoard implements Notifier.
var _ Notifier = (*NoticeBoard)(nil)

// NewNoticeBoard creates an empty notice board.
func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{}
}

// Warn implements Notifier.
func (b *NoticeBoard) Warn(text string) {
	b.active = &Notice{Kind: NoticeWarn, Text: text}
}

// Info implements Notifier.
func (b *NoticeBoard) Info(text string) {
	b.active = &Notice{Kind: NoticeInfo, Text: text}
}

// Reveal implements Notifier.
func (b *NoticeBoard) Reveal(label, value string) {
	b.active = &Notice{Kind: NoticeReveal, Label: label, Value: value}
}

// Active returns the notice currently shown, or nil.
func (b *NoticeBoard) Active() *Notice {
	return b.active
}

// Dismiss clears the active notice.
func (b *NoticeBoard) Dismiss() {
	b.active = nil
}

// renderNotice renders the active notice as a centered modal overlay.
func (m Model) renderNotice(n *Notice) string {
	var title, body string
	switch n.Kind {
	case NoticeWarn:
		title = overlayWarnTitleStyle.Render("Notice")
		body = n.Text
	case NoticeInfo:
		title = overlayTitleStyle.Render("Notice")
		body = n.Text
	case NoticeReveal:
		title = overlayTitleStyle.Render(n.Label)
		body = revealValueStyle.Render(n.Value)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		"",
		mutedStyle.Render("enter/esc: dismiss"),
	)

	box := overlayStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
