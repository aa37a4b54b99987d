package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/player"
)

const msgDataRefreshed = "Data refreshed"

type playerDashboardMsg struct {
	out    *player.DashboardOutput
	err    error
	manual bool
}

type completeMsg struct {
	title string
	out   *player.CompleteQuestOutput
	err   error
}

type talkMsg struct {
	out *player.TalkToNPCOutput
	err error
}

type playerModel struct {
	ctx      context.Context
	svc      player.Service
	opts     Options
	st       styles
	renderer *decorators.Renderer
	md       *markdownRenderer
	feed     *feed
	toasts   toasts

	width  int
	height int
	err    error
	busy   bool

	status *entities.PlayerStatus
	quests []*entities.QuestWithStatus
	cursor int

	// celebration shown after a completed quest, cleared by the next key
	celebration      string
	celebrationLines []string
}

func newPlayerModel(ctx context.Context, svc player.Service, opts Options) playerModel {
	opts = opts.withDefaults()
	return playerModel{
		ctx:      ctx,
		svc:      svc,
		opts:     opts,
		st:       newStyles(opts.Theme),
		renderer: decorators.NewRenderer(opts.Style, opts.Catalog),
		md:       newMarkdownRenderer(opts.MarkdownStyle),
		feed:     newFeed(opts.Notifications),
		busy:     true,
	}
}

func (m playerModel) Init() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return tea.Batch(m.feed.wait(), func() tea.Msg {
		out, err := svc.Init(ctx)
		return playerDashboardMsg{out: out, err: err}
	})
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case notificationMsg:
		return m, tea.Batch(m.toasts.push(notify.Notification(msg)), m.feed.wait())
	case expireToastsMsg:
		m.toasts.expire(time.Time(msg))
		return m, nil
	case playerDashboardMsg:
		m.busy = false
		if msg.err != nil && errors.IsUnauthenticated(msg.err) {
			m.err = msg.err
			m.feed.close()
			return m, tea.Quit
		}
		m.applyDashboard(msg.out)
		if msg.manual && msg.err == nil {
			return m, m.toasts.push(notify.Notification{
				Level:   notify.LevelSuccess,
				Message: msgDataRefreshed,
				At:      time.Now(),
			})
		}
		return m, nil
	case completeMsg:
		m.busy = false
		if msg.err != nil || msg.out == nil {
			return m, nil
		}
		if msg.out.Result != nil && msg.out.Result.Success {
			m.celebration = msg.title
			m.celebrationLines = msg.out.Summary
		}
		m.applyDashboard(msg.out.Dashboard)
		return m, nil
	case talkMsg:
		m.busy = false
		if msg.out != nil {
			m.applyDashboard(msg.out.Dashboard)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *playerModel) applyDashboard(out *player.DashboardOutput) {
	if out == nil {
		return
	}
	if out.Status != nil {
		m.status = out.Status
	}
	if out.Quests != nil {
		m.quests = out.Quests
	}
	if m.cursor >= len(m.quests) {
		m.cursor = max(len(m.quests)-1, 0)
	}
}

func (m playerModel) selected() *entities.QuestWithStatus {
	if m.cursor < 0 || m.cursor >= len(m.quests) {
		return nil
	}
	return m.quests[m.cursor]
}

func (m playerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.feed.close()
		return m, tea.Quit
	}

	if m.celebration != "" {
		m.celebration = ""
		m.celebrationLines = nil
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	svc, ctx := m.svc, m.ctx
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.quests)-1 {
			m.cursor++
		}
	case "t":
		m.busy = true
		return m, func() tea.Msg {
			out, err := svc.TalkToNPC(ctx)
			return talkMsg{out: out, err: err}
		}
	case "r":
		m.busy = true
		return m, func() tea.Msg {
			out, err := svc.Refresh(ctx)
			return playerDashboardMsg{out: out, err: err, manual: true}
		}
	case "T":
		m.st = newStyles(nextThemeName(m.st.theme, 1))
	case "c", "enter":
		q := m.selected()
		if q == nil || q.IsCompleted || !q.CanStart {
			return m, nil
		}
		m.busy = true
		id, title := q.ID, q.Title
		return m, func() tea.Msg {
			out, err := svc.CompleteQuest(ctx, id)
			return completeMsg{title: title, out: out, err: err}
		}
	}
	return m, nil
}

func (m playerModel) View() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}

	var body string
	if m.celebration != "" {
		body = m.renderCelebration()
	} else {
		sideWidth := 32
		if w < 90 {
			sideWidth = 26
		}
		main := lipgloss.NewStyle().MarginRight(2).Render(m.renderQuests(w - sideWidth - 6))
		side := m.st.panel.Width(sideWidth).Render(m.renderStatus())
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.st.title.Render("QUEST BOARD"),
			lipgloss.JoinHorizontal(lipgloss.Top, main, side),
			m.st.help.Render("[c] complete  [t] talk to NPC  [r] refresh  [T] theme  [q] quit"),
		)
	}

	if t := m.toasts.view(m.st); t != "" {
		body += "\n\n" + t
	}
	return body
}

func (m playerModel) renderStatus() string {
	s := m.status
	if s == nil {
		return m.st.muted.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(m.st.subtitle.Render(s.Name) + "\n")
	b.WriteString(fmt.Sprintf("Level  %d\n", s.Level))
	b.WriteString(fmt.Sprintf("XP     %s\n", formatNumber(s.XP)))
	b.WriteString(fmt.Sprintf("Money  %s\n", formatNumber(s.Money)))
	b.WriteString(fmt.Sprintf("Done   %d quests\n", len(s.CompletedQuests)))
	if s.SpokenToNPC {
		b.WriteString(m.st.success.Render("✓ NPC contacted") + "\n")
	}

	b.WriteString("\n" + m.st.subtitle.Render("Inventory") + "\n")
	if len(s.Inventory) == 0 {
		b.WriteString(m.st.muted.Render("Inventory empty"))
	}
	for _, item := range s.Inventory {
		b.WriteString(m.renderer.InventoryLabel(item) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m playerModel) badge(q *entities.QuestWithStatus) string {
	switch q.Availability() {
	case "completed":
		return m.st.success.Render("✓ Completed")
	case "available":
		return m.st.info.Render("Available")
	default:
		return m.st.muted.Render("🔒 Locked")
	}
}

func (m playerModel) renderQuests(width int) string {
	if m.busy && len(m.quests) == 0 {
		return m.st.muted.Render("Loading...")
	}
	if len(m.quests) == 0 {
		return m.st.muted.Render("No quests available")
	}

	var b strings.Builder
	for i, q := range m.quests {
		row := fmt.Sprintf("%-36s %-10s ⭐ %s XP  ", truncate(q.Title, 36), q.Type.Label(), formatNumber(q.BaseXP))
		if i == m.cursor {
			b.WriteString(m.st.selected.Render("> "+row) + m.badge(q) + "\n")
		} else {
			b.WriteString(m.st.text.Render("  "+row) + m.badge(q) + "\n")
		}
	}

	if q := m.selected(); q != nil {
		b.WriteString("\n" + m.renderQuestDetails(q, width))
	}
	return b.String()
}

func (m playerModel) renderQuestDetails(q *entities.QuestWithStatus, width int) string {
	var b strings.Builder
	b.WriteString(m.st.subtitle.Render(q.Title) + "\n")
	if desc := m.md.Render(q.Description, width); desc != "" {
		b.WriteString(desc + "\n")
	}
	if len(q.MissingRequirements) > 0 {
		b.WriteString(m.st.warning.Render("Missing requirements:") + "\n")
		for _, req := range q.MissingRequirements {
			b.WriteString(m.st.error.Render("✗ "+req) + "\n")
		}
	}
	if badges := m.renderer.RewardBadges(decodeList(q.Decorators, m.opts.Catalog)); len(badges) > 0 {
		b.WriteString(m.st.success.Render("Rewards: ") + strings.Join(badges, "  ") + "\n")
	}
	return m.st.panel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m playerModel) renderCelebration() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("QUEST COMPLETE!") + "\n")
	b.WriteString(m.st.subtitle.Render(m.celebration) + "\n\n")
	for _, line := range m.celebrationLines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.st.help.Render("press any key to continue"))
	return m.st.focused.Render(b.String())
}

// RunPlayer runs the player dashboard until the user quits
func RunPlayer(ctx context.Context, svc player.Service, opts Options) error {
	m := newPlayerModel(ctx, svc, opts)
	defer m.feed.close()

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "player dashboard failed")
	}
	if fm, ok := final.(playerModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
