package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/ui"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	severityStyles = map[models.Severity]lipgloss.Style{
		models.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.SeveritySuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

// Terminal is the UI surface of the REPL. Field values, validity and event
// dispatch are kept by the embedded Headless; views and notifications are
// additionally printed to out.
type Terminal struct {
	*ui.Headless

	mu  sync.Mutex
	out io.Writer
}

var (
	_ ui.Surface = (*Terminal)(nil)
	_ ui.Display = (*Terminal)(nil)
)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{Headless: ui.NewHeadless(), out: out}
}

func (t *Terminal) Render(view ui.View, user *models.User) {
	t.Headless.Render(view, user)
	t.print(renderView(view, user))
}

func (t *Terminal) Show(n models.Notification) {
	t.Headless.Show(n)
	t.print(renderNotification(n))
}

// Println writes a plain line.
func (t *Terminal) Println(a ...any) {
	t.print(fmt.Sprint(a...))
}

func (t *Terminal) print(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, s)
}

func renderView(view ui.View, user *models.User) string {
	switch view {
	case ui.ProfileView:
		return renderProfile(user)
	case ui.RegisterView:
		return titleStyle.Render("Register") + "\n" +
			hintStyle.Render("type 'register' to create an account, 'view login' to sign in instead")
	default:
		return titleStyle.Render("Login") + "\n" +
			hintStyle.Render("type 'login' to sign in, 'view register' to create an account")
	}
}

func renderProfile(u *models.User) string {
	if u == nil {
		return titleStyle.Render("Profile")
	}

	registered := "unknown"
	if u.CreatedAt != nil {
		registered = u.CreatedAt.Local().Format(timeLayout)
	}

	rows := []string{
		titleStyle.Render("Profile"),
		row("User ID", fmt.Sprint(u.ID)),
		row("Username", u.Username),
		row("Email", u.Email),
		row("Registered", registered),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func row(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func renderNotification(n models.Notification) string {
	style, ok := severityStyles[n.Severity]
	if !ok {
		style = severityStyles[models.SeverityInfo]
	}
	return style.Render(fmt.Sprintf("[%s] %s", n.Severity, n.Text))
}

func renderInvalid(msgs map[ui.Field]string, fields []ui.Field) string {
	var lines []string
	for _, f := range fields {
		if msg, ok := msgs[f]; ok {
			lines = append(lines, severityStyles[models.SeverityError].Render(fmt.Sprintf("%s: %s", fieldLabel(f), msg)))
		}
	}
	return strings.Join(lines, "\n")
}

func fieldLabel(f ui.Field) string {
	switch f {
	case ui.LoginUsername, ui.RegisterUsername:
		return "username"
	case ui.LoginPassword, ui.RegisterPassword:
		return "password"
	case ui.RegisterEmail:
		return "email"
	case ui.RegisterConfirm:
		return "confirm password"
	default:
		return string(f)
	}
}
