package render

import (
	"fmt"
	"strings"

	"github.com/Sathvik1533/Skillsync/internal/models"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth     = 40
	defaultWidth = 80
	dateLayout   = "2006-01-02"
)

// Renderer formats client output for one theme and terminal width.
// It is not safe for concurrent use.
type Renderer struct {
	theme  models.Theme
	width  int
	styles styles
	md     *glamour.TermRenderer
}

// New returns a Renderer. Widths below 40 fall back to 80 columns.
func New(theme models.Theme, width int) *Renderer {
	if width < minWidth {
		width = defaultWidth
	}
	r := &Renderer{width: width}
	r.SetTheme(theme)
	return r
}

// Theme returns the active theme.
func (r *Renderer) Theme() models.Theme {
	return r.theme
}

// SetTheme switches palettes and the Markdown style.
func (r *Renderer) SetTheme(t models.Theme) {
	if t != models.ThemeDark {
		t = models.ThemeLight
	}
	r.theme = t
	r.styles = newStyles(t)

	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(t)),
		glamour.WithWordWrap(r.width-4),
	)
	if err != nil {
		md = nil
	}
	r.md = md
}

// markdown renders src as Markdown, falling back to the raw text.
func (r *Renderer) markdown(src string) string {
	if r.md == nil {
		return src
	}
	out, err := r.md.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}

// Count is the list header, e.g. "1 skill found" or "3 skills found".
func Count(n int) string {
	if n == 1 {
		return "1 skill found"
	}
	return fmt.Sprintf("%d skills found", n)
}

// SkillCard renders one skill as a bordered card.
func (r *Renderer) SkillCard(s models.Skill) string {
	st := r.styles

	lines := []string{
		st.heading.Render(s.Name) + "  " + st.category.Render(s.Category),
	}
	if s.Description != "" {
		lines = append(lines, st.text.Render(s.Description))
	}
	footer := st.levelBadge(s.Level)
	if !s.CreatedAt.IsZero() {
		footer += "  " + st.secondary.Render(s.CreatedAt.Local().Format(dateLayout))
	}
	lines = append(lines, footer, st.secondary.Render("id: "+s.ID))

	return st.card.Width(r.width - 2).Render(strings.Join(lines, "\n"))
}

// SkillList renders the count header followed by the cards, or the empty
// state when there are none.
func (r *Renderer) SkillList(skills []models.Skill) string {
	var b strings.Builder
	b.WriteString(r.styles.secondary.Render(Count(len(skills))))
	b.WriteString("\n")

	if len(skills) == 0 {
		b.WriteString(r.emptyState("No skills match your filters", "Try another search term or run 'list' to clear filters"))
		return b.String()
	}

	for _, s := range skills {
		b.WriteString(r.SkillCard(s))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Detail renders every field of s; description and goals are Markdown.
func (r *Renderer) Detail(s models.Skill) string {
	st := r.styles

	var b strings.Builder
	b.WriteString(st.title.Render(s.Name))
	b.WriteString("  " + st.levelBadge(s.Level) + "\n")
	b.WriteString(st.secondary.Render("Category: ") + st.category.Render(s.Category) + "\n")
	b.WriteString(st.secondary.Render(fmt.Sprintf("Created %s · Updated %s",
		s.CreatedAt.Local().Format(dateLayout+" 15:04"), s.UpdatedAt.Local().Format(dateLayout+" 15:04"))) + "\n")
	b.WriteString(st.secondary.Render("id: "+s.ID) + "\n")

	if s.Description != "" {
		b.WriteString("\n" + st.heading.Render("Description") + "\n")
		b.WriteString(r.markdown(s.Description) + "\n")
	}
	if s.Goals != "" {
		b.WriteString("\n" + st.heading.Render("Goals") + "\n")
		b.WriteString(r.markdown(s.Goals) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dashboard renders the greeting, the three totals and the recent skills.
func (r *Renderer) Dashboard(u models.User, sum models.Summary) string {
	st := r.styles

	name := u.Name
	if strings.TrimSpace(name) == "" {
		name = u.FirstName
	}
	if strings.TrimSpace(name) == "" {
		name = "User"
	}

	stat := func(label string, v int) string {
		return st.stat.Render(st.statValue.Render(fmt.Sprint(v)) + "\n" + st.secondary.Render(label))
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Welcome back, "+name+"!") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Total Skills", sum.Total),
		stat("Completed", sum.Completed),
		stat("Learning", sum.Learning),
	))
	b.WriteString("\n\n" + st.heading.Render("Recent Skills") + "\n")

	if len(sum.Recent) == 0 {
		b.WriteString(r.emptyState("No skills added yet", "Start tracking your skills to see them here. Type 'add' to add your first skill."))
		return b.String()
	}

	for _, s := range sum.Recent {
		b.WriteString(r.SkillCard(s) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Categories renders the distinct categories with their skill counts.
func (r *Renderer) Categories(categories []string, counts map[string]int) string {
	st := r.styles
	if len(categories) == 0 {
		return r.emptyState("No categories yet", "Categories appear once you add skills")
	}

	var b strings.Builder
	b.WriteString(st.heading.Render("Categories") + "\n")
	for _, c := range categories {
		b.WriteString("  " + st.category.Render(c) + st.secondary.Render(fmt.Sprintf(" (%d)", counts[c])) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) emptyState(title, hint string) string {
	return r.styles.heading.Render(title) + "\n" + r.styles.secondary.Render(hint)
}
