package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/quest-dash/internal/entities"
	"github.com/KirkDiggler/quest-dash/internal/errors"
	"github.com/KirkDiggler/quest-dash/internal/notify"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/auth"
)

// Authenticator is the part of auth.Service used by the login screen
type Authenticator interface {
	Login(ctx context.Context, input *auth.LoginInput) (*auth.LoginOutput, error)
	Register(ctx context.Context, input *auth.RegisterInput) (*auth.RegisterOutput, error)
}

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

type authResultMsg struct {
	session *entities.Session
	err     error
}

type loginModel struct {
	ctx    context.Context
	svc    Authenticator
	st     styles
	feed   *feed
	toasts toasts

	mode     authMode
	inputs   []textinput.Model
	isAdmin  bool
	focus    int
	busy     bool
	session  *entities.Session
	canceled bool
}

const (
	inputUsername = iota
	inputPassword
	inputConfirm
)

func newLoginModel(ctx context.Context, svc Authenticator, mode authMode, opts Options) loginModel {
	opts = opts.withDefaults()

	username := newField("Username", 50)
	password := newField("Password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	confirm := newField("Confirm password", 128)
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	m := loginModel{
		ctx:    ctx,
		svc:    svc,
		st:     newStyles(opts.Theme),
		feed:   newFeed(opts.Notifications),
		mode:   mode,
		inputs: []textinput.Model{username, password, confirm},
	}
	m.inputs[inputUsername].Focus()
	return m
}

// fields returns how many inputs the current mode shows, plus the admin toggle in register mode
func (m loginModel) fields() int {
	if m.mode == modeRegister {
		return len(m.inputs) + 1
	}
	return 2
}

func (m loginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.feed.wait())
}

func (m *loginModel) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m loginModel) submit() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	username := strings.TrimSpace(m.inputs[inputUsername].Value())
	password := m.inputs[inputPassword].Value()

	if m.mode == modeLogin {
		return func() tea.Msg {
			out, err := svc.Login(ctx, &auth.LoginInput{Username: username, Password: password})
			if err != nil {
				return authResultMsg{err: err}
			}
			return authResultMsg{session: out.Session}
		}
	}

	input := &auth.RegisterInput{
		Username:        username,
		Password:        password,
		ConfirmPassword: m.inputs[inputConfirm].Value(),
		IsAdmin:         m.isAdmin,
	}
	return func() tea.Msg {
		out, err := svc.Register(ctx, input)
		if err != nil {
			return authResultMsg{err: err}
		}
		return authResultMsg{session: out.Session}
	}
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationMsg:
		return m, tea.Batch(m.toasts.push(notify.Notification(msg)), m.feed.wait())
	case expireToastsMsg:
		m.toasts.expire(time.Time(msg))
		return m, nil
	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			m.inputs[inputPassword].SetValue("")
			m.inputs[inputConfirm].SetValue("")
			return m, m.setFocus(inputPassword)
		}
		m.session = msg.session
		m.feed.close()
		return m, tea.Quit
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			m.feed.close()
			return m, tea.Quit
		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			return m, m.setFocus(inputUsername)
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % m.fields())
		case "shift+tab", "up":
			return m, m.setFocus((m.focus - 1 + m.fields()) % m.fields())
		case "enter":
			if m.focus < m.fields()-1 && m.mode == modeLogin {
				return m, m.setFocus(m.focus + 1)
			}
			m.busy = true
			return m, m.submit()
		case " ":
			if m.mode == modeRegister && m.focus == len(m.inputs) {
				m.isAdmin = !m.isAdmin
				return m, nil
			}
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	if m.mode == modeLogin {
		b.WriteString(m.st.title.Render("LOGIN") + "\n\n")
	} else {
		b.WriteString(m.st.title.Render("CREATE ACCOUNT") + "\n\n")
	}

	labels := []string{"Username", "Password", "Confirm"}
	for i := 0; i < len(m.inputs); i++ {
		if i == inputConfirm && m.mode == modeLogin {
			break
		}
		marker := "  "
		if m.focus == i {
			marker = m.st.selected.Render("> ")
		}
		b.WriteString(marker + m.st.muted.Render(labels[i]+": ") + m.inputs[i].View() + "\n")
	}

	if m.mode == modeRegister {
		marker := "  "
		if m.focus == len(m.inputs) {
			marker = m.st.selected.Render("> ")
		}
		box := "[ ]"
		if m.isAdmin {
			box = "[x]"
		}
		b.WriteString(marker + box + " Administrator account\n")
	}

	if m.busy {
		b.WriteString("\n" + m.st.muted.Render("Contacting the Quest API..."))
	}
	b.WriteString("\n" + m.st.help.Render("[enter] submit  [tab] next  [ctrl+r] login/register  [esc] cancel"))

	out := m.st.focused.Render(b.String())
	if t := m.toasts.view(m.st); t != "" {
		out += "\n\n" + t
	}
	return out
}

func runAuth(ctx context.Context, svc Authenticator, mode authMode, opts Options) (*entities.Session, error) {
	m := newLoginModel(ctx, svc, mode, opts)
	defer m.feed.close()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "login screen failed")
	}
	fm, ok := final.(loginModel)
	if !ok || fm.canceled || fm.session == nil {
		return nil, errors.New(errors.CodeCanceled, "login canceled")
	}
	return fm.session, nil
}

// RunLogin prompts for credentials and returns the stored session
func RunLogin(ctx context.Context, svc Authenticator, opts Options) (*entities.Session, error) {
	return runAuth(ctx, svc, modeLogin, opts)
}

// RunRegister prompts for a new account and returns the stored session
func RunRegister(ctx context.Context, svc Authenticator, opts Options) (*entities.Session, error) {
	return runAuth(ctx, svc, modeRegister, opts)
}
