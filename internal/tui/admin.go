package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/admin"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
)

const (
	viewQuestList = "quest_list"
	viewQuestForm = "quest_form"
	viewConfirm   = "confirm_delete"
)

// form focus order
const (
	fieldTitle = iota
	fieldDescription
	fieldBaseXP
	fieldType
	fieldTag
	fieldValue
	fieldDecorators
	fieldCount
)

type dashboardMsg struct {
	out *admin.DashboardOutput
	err error
}

type editMsg struct{ err error }

type submitMsg struct {
	out *admin.SubmitFormOutput
	err error
}

type fixIDsMsg struct {
	out *admin.FixIDsOutput
	err error
}

type adminModel struct {
	ctx      context.Context
	svc      admin.Service
	form     *questform.Controller
	opts     Options
	st       styles
	renderer *decorators.Renderer
	md       *markdownRenderer
	feed     *feed
	toasts   toasts

	view   string
	width  int
	height int
	err    error
	busy   bool

	quests    []*entities.Quest
	stats     *entities.AdminStats
	cursor    int
	filter    textinput.Model
	filtering bool

	focus       int
	title       textinput.Model
	description textinput.Model
	baseXP      textinput.Model
	questType   int
	tag         int
	value       valueInput
	decoCursor  int
}

func newAdminModel(ctx context.Context, svc admin.Service, opts Options) adminModel {
	opts = opts.withDefaults()

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter quests"

	m := adminModel{
		ctx:         ctx,
		svc:         svc,
		form:        svc.Form(),
		opts:        opts,
		st:          newStyles(opts.Theme),
		renderer:    decorators.NewRenderer(opts.Style, opts.Catalog),
		md:          newMarkdownRenderer(opts.MarkdownStyle),
		feed:        newFeed(opts.Notifications),
		view:        viewQuestList,
		filter:      filter,
		title:       newField("Quest title", 120),
		description: newField("Markdown description", 1000),
		baseXP:      newField("0", 9),
		busy:        true,
	}
	m.value = newValueInput(decorators.ControlFor(decorators.Tags[0], opts.Catalog))
	return m
}

func newField(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

func (m adminModel) Init() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return tea.Batch(m.feed.wait(), func() tea.Msg {
		out, err := svc.Init(ctx)
		return dashboardMsg{out: out, err: err}
	})
}

func (m adminModel) refresh() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		out, err := svc.Refresh(ctx)
		return dashboardMsg{out: out, err: err}
	}
}

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case notificationMsg:
		return m, tea.Batch(m.toasts.push(notify.Notification(msg)), m.feed.wait())
	case expireToastsMsg:
		m.toasts.expire(time.Time(msg))
		return m, nil
	case dashboardMsg:
		m.busy = false
		if msg.err != nil {
			if errors.IsPermissionDenied(msg.err) {
				m.err = msg.err
				m.feed.close()
				return m, tea.Quit
			}
			return m, nil
		}
		m.applyDashboard(msg.out)
		return m, nil
	case editMsg:
		m.busy = false
		if msg.err == nil {
			m.openForm()
		}
		return m, nil
	case submitMsg:
		m.busy = false
		if msg.err == nil || m.form.State() == questform.StateClosed {
			m.view = viewQuestList
			if msg.out != nil {
				m.applyDashboard(msg.out.Dashboard)
			}
		}
		return m, nil
	case fixIDsMsg:
		m.busy = false
		if msg.out != nil {
			m.applyDashboard(msg.out.Dashboard)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.feed.close()
			return m, tea.Quit
		}
		switch m.view {
		case viewQuestForm:
			return m.updateForm(msg)
		case viewConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *adminModel) applyDashboard(out *admin.DashboardOutput) {
	if out == nil {
		return
	}
	m.quests = out.Quests
	m.stats = out.Stats
	if visible := m.visible(); m.cursor >= len(visible) {
		m.cursor = max(len(visible)-1, 0)
	}
}

func (m adminModel) visible() []*entities.Quest {
	return filterQuests(m.filter.Value(), m.quests)
}

func (m adminModel) selected() *entities.Quest {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

func (m adminModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.SetValue("")
			m.filter.Blur()
		case "enter":
			m.filtering = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
		return m, nil
	}

	if m.busy {
		if msg.String() == "q" {
			m.feed.close()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.feed.close()
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		return m, m.filter.Focus()
	case "t":
		m.st = newStyles(nextThemeName(m.st.theme, 1))
	case "r":
		m.busy = true
		return m, m.refresh()
	case "n":
		m.svc.OpenCreate()
		m.openForm()
		return m, m.focusField(fieldTitle)
	case "e", "enter":
		q := m.selected()
		if q == nil {
			return m, nil
		}
		m.busy = true
		svc, ctx, id := m.svc, m.ctx, q.ID
		return m, func() tea.Msg {
			return editMsg{err: svc.EditQuest(ctx, id)}
		}
	case "d":
		if m.selected() != nil {
			m.view = viewConfirm
		}
	case "f":
		m.busy = true
		svc, ctx := m.svc, m.ctx
		return m, func() tea.Msg {
			out, err := svc.FixIDs(ctx)
			return fixIDsMsg{out: out, err: err}
		}
	}
	return m, nil
}

func (m adminModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.view = viewQuestList
	q := m.selected()
	if q == nil || (msg.String() != "y" && msg.String() != "Y") {
		return m, nil
	}

	m.busy = true
	svc, ctx, id := m.svc, m.ctx, q.ID
	return m, func() tea.Msg {
		out, err := svc.DeleteQuest(ctx, id)
		return dashboardMsg{out: out, err: err}
	}
}

// openForm copies the controller state into the widgets
func (m *adminModel) openForm() {
	f := m.form.Fields()
	m.title.SetValue(f.Title)
	m.description.SetValue(f.Description)
	m.baseXP.SetValue(f.BaseXP)
	m.title.CursorEnd()
	m.description.CursorEnd()
	m.baseXP.CursorEnd()
	m.questType = 0
	for i, t := range entities.QuestTypes {
		if t == f.Type {
			m.questType = i
		}
	}
	m.tag = 0
	m.value = newValueInput(m.form.SelectTag(decorators.Tags[m.tag]))
	m.decoCursor = 0
	m.view = viewQuestForm
	_ = m.focusField(fieldTitle)
}

// syncFields pushes the typed values into the controller
func (m *adminModel) syncFields() {
	m.form.SetFields(questform.Fields{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		BaseXP:      m.baseXP.Value(),
		Type:        entities.QuestTypes[m.questType],
	})
}

func (m *adminModel) focusField(field int) tea.Cmd {
	m.focus = field
	m.title.Blur()
	m.description.Blur()
	m.baseXP.Blur()
	m.value.Blur()

	switch field {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	case fieldBaseXP:
		return m.baseXP.Focus()
	case fieldValue:
		return m.value.Focus()
	}
	return nil
}

func (m adminModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form.Cancel()
		m.view = viewQuestList
		return m, nil
	case "ctrl+s":
		m.syncFields()
		m.busy = true
		svc, ctx := m.svc, m.ctx
		return m, func() tea.Msg {
			out, err := svc.SubmitForm(ctx)
			return submitMsg{out: out, err: err}
		}
	case "tab", "down":
		return m, m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.focusField((m.focus - 1 + fieldCount) % fieldCount)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldBaseXP:
		m.baseXP, cmd = m.baseXP.Update(msg)
	case fieldType:
		if isCycleKey(msg) {
			m.questType = (m.questType + 1) % len(entities.QuestTypes)
		}
	case fieldTag:
		if step := cycleStep(msg); step != 0 {
			m.tag = (m.tag + step + len(decorators.Tags)) % len(decorators.Tags)
			m.value = newValueInput(m.form.SelectTag(decorators.Tags[m.tag]))
		}
	case fieldValue:
		if msg.String() == "enter" {
			if _, err := m.form.AddDecorator(m.ctx, decorators.Tags[m.tag], m.value.Value()); err == nil {
				m.value = newValueInput(m.form.SelectTag(decorators.Tags[m.tag]))
				cmd = m.value.Focus()
			}
			return m, cmd
		}
		m.value, cmd = m.value.Update(msg)
	case fieldDecorators:
		lines := m.form.Lines()
		switch msg.String() {
		case "left", "h":
			if m.decoCursor > 0 {
				m.decoCursor--
			}
		case "right", "l":
			if m.decoCursor < len(lines)-1 {
				m.decoCursor++
			}
		case "x", "delete", "backspace":
			m.form.RemoveDecorator(m.decoCursor)
			if m.decoCursor >= len(m.form.Lines()) && m.decoCursor > 0 {
				m.decoCursor--
			}
		}
	}
	m.syncFields()
	return m, cmd
}

func isCycleKey(msg tea.KeyMsg) bool {
	return cycleStep(msg) != 0
}

func cycleStep(msg tea.KeyMsg) int {
	switch msg.String() {
	case "right", "l", " ", "enter":
		return 1
	case "left", "h":
		return -1
	}
	return 0
}

func (m adminModel) View() string {
	var body string
	switch m.view {
	case viewQuestForm:
		body = m.renderForm()
	case viewConfirm:
		q := m.selected()
		title := ""
		if q != nil {
			title = q.Title
		}
		body = m.renderList() + "\n" + m.st.warning.Render(fmt.Sprintf("Delete quest %q? [y/N]", title))
	default:
		body = m.renderList()
	}

	if t := m.toasts.view(m.st); t != "" {
		body += "\n\n" + t
	}
	return body
}

func (m adminModel) renderStats() string {
	s := m.stats
	if s == nil {
		s = &entities.AdminStats{}
	}
	return m.st.muted.Render(fmt.Sprintf("Users %s  •  Quests %s  •  Completed %s  •  In progress %s",
		formatNumber(s.TotalUsers),
		formatNumber(s.TotalQuests),
		formatNumber(s.TotalCompleted),
		formatNumber(s.TotalInProgress),
	))
}

func (m adminModel) renderList() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.st.title.Render("QUEST ADMIN") + "\n")
	b.WriteString(m.renderStats() + "\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View() + "\n\n")
	}

	visible := m.visible()
	switch {
	case m.busy && len(m.quests) == 0:
		b.WriteString(m.st.muted.Render("Loading...") + "\n")
	case len(visible) == 0:
		b.WriteString(m.st.muted.Render("No quests") + "\n")
	}

	for i, q := range visible {
		row := fmt.Sprintf("#%-4d %-40s %-10s %6s XP  %d decorators",
			q.ID,
			truncate(q.Title, 40),
			q.Type.Label(),
			formatNumber(q.BaseXP),
			len(decodeList(q.Decorators, m.opts.Catalog)),
		)
		if i == m.cursor {
			b.WriteString(m.st.selected.Render("> "+row) + "\n")
		} else {
			b.WriteString(m.st.text.Render("  "+row) + "\n")
		}
	}

	if q := m.selected(); q != nil {
		b.WriteString("\n" + m.renderDetails(q, w-4) + "\n")
	}

	b.WriteString("\n" + m.st.help.Render("[n] new  [e] edit  [d] delete  [f] fix ids  [r] refresh  [/] filter  [t] theme  [q] quit"))
	return b.String()
}

func (m adminModel) renderDetails(q *entities.Quest, width int) string {
	var b strings.Builder
	b.WriteString(m.st.subtitle.Render(q.Title) + "\n")
	if desc := m.md.Render(q.Description, width); desc != "" {
		b.WriteString(desc + "\n")
	}
	lines := m.renderer.Lines(decodeList(q.Decorators, m.opts.Catalog))
	if len(lines) == 0 {
		b.WriteString(m.st.muted.Render(decorators.EmptyPlaceholder))
	}
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("%s %s\n", m.st.muted.Render(l.Kind+":"), l.Label))
	}
	return m.st.panel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m adminModel) renderForm() string {
	heading := "NEW QUEST"
	if id, ok := m.form.Editing(); ok {
		heading = fmt.Sprintf("EDIT QUEST #%d", id)
	}

	row := func(field int, label, content string) string {
		marker := "  "
		if m.focus == field {
			marker = m.st.selected.Render("> ")
		}
		return marker + m.st.muted.Render(fmt.Sprintf("%-12s", label)) + content
	}

	var typeLabels []string
	for i, t := range entities.QuestTypes {
		if i == m.questType {
			typeLabels = append(typeLabels, m.st.selected.Render("["+t.Label()+"]"))
		} else {
			typeLabels = append(typeLabels, m.st.muted.Render(t.Label()))
		}
	}

	var tagLabels []string
	for i, t := range decorators.Tags {
		if i == m.tag {
			tagLabels = append(tagLabels, m.st.selected.Render("["+t.Title()+"]"))
		} else {
			tagLabels = append(tagLabels, m.st.muted.Render(t.Title()))
		}
	}

	lines := m.form.Lines()
	var deco strings.Builder
	if len(lines) == 0 {
		deco.WriteString(m.st.muted.Render(decorators.EmptyPlaceholder))
	}
	for _, l := range lines {
		text := fmt.Sprintf("%d. %s: %s", l.Index+1, l.Kind, l.Label)
		if m.focus == fieldDecorators && l.Index == m.decoCursor {
			text = m.st.selected.Render(text + "  [x] remove")
		}
		deco.WriteString("\n    " + text)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		m.st.title.Render(heading),
		"",
		row(fieldTitle, "Title", m.title.View()),
		row(fieldDescription, "Description", m.description.View()),
		row(fieldBaseXP, "Base XP", m.baseXP.View()),
		row(fieldType, "Type", strings.Join(typeLabels, " ")),
		"",
		m.st.subtitle.Render("Decorators"),
		row(fieldTag, "Kind", strings.Join(tagLabels, " ")),
		row(fieldValue, "", m.value.View(m.st)),
		row(fieldDecorators, "Configured", deco.String()),
		"",
		m.st.help.Render("[tab] next field  [enter] add decorator  [x] remove  [ctrl+s] save  [esc] cancel"),
	)
	return m.st.focused.Render(form)
}

// RunAdmin runs the admin dashboard until the user quits
func RunAdmin(ctx context.Context, svc admin.Service, opts Options) error {
	m := newAdminModel(ctx, svc, opts)
	defer m.feed.close()

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "admin dashboard failed")
	}
	if fm, ok := final.(adminModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
