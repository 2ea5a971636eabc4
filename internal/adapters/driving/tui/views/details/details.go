// Package details provides the repository details view for the TUI.
package details

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/views/feed"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// View shows every field of one repository.
type View struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	actionService driving.RepositoryActionService
	ctx           context.Context

	repo         *domain.Repository
	scrollOffset int
	width        int
	height       int
	message      string
	failed       bool
}

// NewView creates a new repository details view.
func NewView(s *styles.Styles, km *keymap.KeyMap, actionService driving.RepositoryActionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:        s,
		keymap:        km,
		actionService: actionService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context passed to the action service.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetRepository sets the repository to display.
func (v *View) SetRepository(repo domain.Repository) {
	v.repo = &repo
	v.scrollOffset = 0
	v.message = ""
	v.failed = false
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ActionCompleted:
		v.failed = msg.Err != nil
		if v.failed {
			v.message = msg.Err.Error()
		} else {
			v.message = msg.Message
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case key.Matches(msg, v.keymap.Open):
		if v.repo != nil {
			return v, feed.OpenCmd(v.ctx, v.actionService, v.repo)
		}
	case key.Matches(msg, v.keymap.Copy):
		if v.repo != nil {
			return v, feed.CopyCmd(v.ctx, v.actionService, v.repo)
		}
	case key.Matches(msg, v.keymap.Back), key.Matches(msg, v.keymap.Details):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFeed}
		}
	case key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	available := v.height - 6
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// buildContent builds the field lines for display.
func (v *View) buildContent() []string {
	if v.repo == nil {
		return nil
	}
	r := v.repo

	lines := []string{
		v.formatField("Name", r.Name),
	}
	if r.FullName != "" {
		lines = append(lines, v.formatField("Full name", r.FullName))
	}
	lines = append(lines,
		v.formatField("ID", strconv.FormatInt(r.ID, 10)),
		v.formatField("Stars", fmt.Sprintf("%s (%d)", r.StarsLabel(), r.Stars)),
		v.formatField("Owner", r.Owner.Login),
		v.formatField("Avatar", r.Owner.AvatarURL),
		v.formatField("URL", r.HTMLURL))
	if r.Language != "" {
		lines = append(lines, v.formatField("Language", r.Language))
	}
	if !r.CreatedAt.IsZero() {
		lines = append(lines, v.formatField("Created", r.CreatedAt.Format("2006-01-02 15:04:05")))
	}

	lines = append(lines, "", "Description:")
	for _, para := range strings.Split(r.DescriptionOrDefault(), "\n") {
		lines = append(lines, wrap(para, v.width-4)...)
	}

	return lines
}

// wrap breaks text into lines of at most width columns on word boundaries.
func wrap(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{"  "}
	}

	var lines []string
	line := "  " + words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = "  " + w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}

// View renders the repository details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Repository Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.repo == nil {
		b.WriteString(v.styles.Muted.Render("No repository selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderLine(lines[i]))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			minInt(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	if v.message != "" {
		b.WriteString("\n")
		if v.failed {
			b.WriteString(v.styles.Error.Render(v.message))
		} else {
			b.WriteString(v.styles.Success.Render(v.message))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderLine styles a content line by its shape.
func (v *View) renderLine(line string) string {
	switch {
	case line == "Description:":
		return v.styles.Subtitle.Render(line)
	case strings.HasPrefix(line, "  "):
		return v.styles.Normal.Render(line)
	case strings.Contains(line, ":"):
		parts := strings.SplitN(line, ":", 2)
		value := v.styles.Normal.Render(parts[1])
		switch strings.TrimSpace(parts[0]) {
		case "URL", "Avatar":
			value = " " + v.styles.Link.Render(strings.TrimSpace(parts[1]))
		case "Stars":
			value = v.styles.Stars.Render(parts[1])
		}
		return v.styles.Subtitle.Render(parts[0]+":") + value
	default:
		return v.styles.Normal.Render(line)
	}
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [o] open  [c] copy url  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Repository returns the displayed repository.
func (v *View) Repository() *domain.Repository {
	return v.repo
}

// ScrollOffset returns the current scroll offset.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Message returns the last action message.
func (v *View) Message() string {
	return v.message
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
