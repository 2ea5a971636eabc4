// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// rowHeight is the number of lines one repository occupies, including
// the blank separator.
const rowHeight = 4

// AvatarMarker stands in for the owner's avatar image.
const AvatarMarker = "◉"

// RepoList displays repositories in a navigable list.
type RepoList struct {
	repos    []domain.Repository
	selected int
	offset   int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRepoList creates a new repository list component.
func NewRepoList(s *styles.Styles) *RepoList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RepoList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// View renders the visible window of the list.
func (r *RepoList) View() string {
	if len(r.repos) == 0 {
		return r.styles.Muted.Render("No repositories yet")
	}

	r.clampOffset()
	end := r.offset + r.VisibleCount()
	if end > len(r.repos) {
		end = len(r.repos)
	}

	rows := make([]string, 0, end-r.offset)
	for i := r.offset; i < end; i++ {
		rows = append(rows, r.renderRow(i, &r.repos[i]))
	}
	return strings.Join(rows, "\n\n")
}

// renderRow formats one repository: name and stars, description, owner.
func (r *RepoList) renderRow(index int, repo *domain.Repository) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	stars := "★ " + repo.StarsLabel()
	nameWidth := r.width - len(indicator) - ansi.StringWidth(stars) - 2
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := ansi.Truncate(repo.Name, nameWidth, "…")

	var title string
	if index == r.selected {
		title = r.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, nameWidth, name)) +
			"  " + r.styles.Stars.Render(stars)
	} else {
		title = r.styles.Normal.Render(indicator) +
			r.styles.Name.Render(fmt.Sprintf("%-*s", nameWidth, name)) +
			"  " + r.styles.Stars.Render(stars)
	}

	textWidth := r.width - 4
	if textWidth < 20 {
		textWidth = 20
	}
	description := ansi.Truncate(flatten(repo.DescriptionOrDefault()), textWidth, "…")
	descLine := "    " + r.styles.Normal.Render(description)
	if repo.Description == nil || *repo.Description == "" {
		descLine = "    " + r.styles.Muted.Render(description)
	}

	owner := "    " + r.styles.Owner.Render(AvatarMarker+" "+repo.Owner.Login)

	return title + "\n" + descLine + "\n" + owner
}

// flatten joins multi-line descriptions so each row keeps its height.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// clampOffset keeps the selection inside the visible window.
func (r *RepoList) clampOffset() {
	visible := r.VisibleCount()
	if r.selected < r.offset {
		r.offset = r.selected
	}
	if r.selected >= r.offset+visible {
		r.offset = r.selected - visible + 1
	}
	if r.offset < 0 {
		r.offset = 0
	}
}

// SetRepositories replaces the list contents. The selection is kept when
// still in range, so appending a page does not move the cursor.
func (r *RepoList) SetRepositories(repos []domain.Repository) {
	r.repos = repos
	if r.selected >= len(repos) {
		r.selected = len(repos) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// Repositories returns the current repositories.
func (r *RepoList) Repositories() []domain.Repository {
	return r.repos
}

// Selected returns the index of the selected repository.
func (r *RepoList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *RepoList) SetSelected(index int) {
	if index >= 0 && index < len(r.repos) {
		r.selected = index
	}
}

// SelectedRepository returns the currently selected repository, or nil if none.
func (r *RepoList) SelectedRepository() *domain.Repository {
	if len(r.repos) == 0 || r.selected < 0 || r.selected >= len(r.repos) {
		return nil
	}
	return &r.repos[r.selected]
}

// NearEnd reports whether the selection is within threshold rows of the
// last loaded repository. An empty list is never near its end.
func (r *RepoList) NearEnd(threshold int) bool {
	if len(r.repos) == 0 {
		return false
	}
	return r.selected >= len(r.repos)-threshold
}

// MoveUp moves selection up.
func (r *RepoList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RepoList) MoveDown() {
	if r.selected < len(r.repos)-1 {
		r.selected++
	}
}

// PageUp moves selection up by one screen.
func (r *RepoList) PageUp() {
	r.selected -= r.VisibleCount()
	if r.selected < 0 {
		r.selected = 0
	}
}

// PageDown moves selection down by one screen.
func (r *RepoList) PageDown() {
	r.selected += r.VisibleCount()
	if r.selected > len(r.repos)-1 {
		r.selected = len(r.repos) - 1
	}
	if r.selected < 0 {
		r.selected = 0
	}
}

// Top selects the first repository.
func (r *RepoList) Top() {
	r.selected = 0
}

// Bottom selects the last loaded repository.
func (r *RepoList) Bottom() {
	if len(r.repos) > 0 {
		r.selected = len(r.repos) - 1
	}
}

// VisibleCount returns how many rows fit in the current height.
func (r *RepoList) VisibleCount() int {
	visible := (r.height + 1) / rowHeight
	if visible < 1 {
		visible = 1
	}
	return visible
}

// SetDimensions sets the component dimensions.
func (r *RepoList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *RepoList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *RepoList) Height() int {
	return r.height
}

// Count returns the number of repositories.
func (r *RepoList) Count() int {
	return len(r.repos)
}

// IsEmpty returns whether the list is empty.
func (r *RepoList) IsEmpty() bool {
	return len(r.repos) == 0
}
