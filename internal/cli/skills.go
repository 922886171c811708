package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/models"
)

// Dashboard prints the greeting, totals and recent skills.
func (a *App) Dashboard(ctx context.Context) error {
	var u models.User
	if a.user != nil {
		u = *a.user
	}
	a.println(a.render.Dashboard(u, a.skills.Summary(a.config.RecentLimit)))
	return nil
}

// List prints every skill whose name or description contains term.
func (a *App) List(ctx context.Context, term string) error {
	a.println(a.render.SkillList(a.skills.Filter(term, "", "")))
	return nil
}

// Filter asks for a search term, category and level and prints the matches.
// Empty answers match everything.
func (a *App) Filter(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search (name or description, Enter for any)", a.out)
	if err != nil {
		return err
	}

	category, err := getChoice(a.reader, "Category (Enter for all)", a.skills.Categories(), a.out)
	if err != nil {
		return err
	}

	status, err := getChoice(a.reader, "Level (Enter for all)", models.Levels, a.out)
	if err != nil {
		return err
	}

	a.println(a.render.SkillList(a.skills.Filter(term, category, status)))
	return nil
}

// Add prompts for a new skill and stores it.
func (a *App) Add(ctx context.Context) error {
	var f models.SkillFields
	var err error

	if f.Name, err = getSimpleText(a.reader, "Skill name *", a.out); err != nil {
		return err
	}
	if f.Category, err = getSimpleText(a.reader, "Category *", a.out); err != nil {
		return err
	}
	if f.Level, err = getChoice(a.reader, "Level *", models.Levels, a.out); err != nil {
		return err
	}
	if f.Description, err = getMultiline(a.reader, "Description (Markdown, optional)", a.out); err != nil {
		return err
	}
	if f.Goals, err = getMultiline(a.reader, "Goals (Markdown, optional)", a.out); err != nil {
		return err
	}

	skill, err := a.skills.Add(ctx, f)
	if errors.Is(err, common.ErrValidation) {
		a.failure("Please fill in all required fields!")
		return nil
	}
	if err != nil && !errors.Is(err, common.ErrPersistence) {
		return err
	}

	a.success("Skill added successfully!")
	a.println(a.render.SkillCard(skill))
	return err
}

// Edit prompts for new values of each field of a skill. Enter keeps the
// current value; "-" clears an optional one.
func (a *App) Edit(ctx context.Context, id string) error {
	skill, ok, err := a.pickSkill(id, "Enter skill id to edit")
	if err != nil || !ok {
		return err
	}

	var p models.SkillPatch

	ask := func(label, current string, dst **string) error {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter to keep)", label, current), a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = &v
		}
		return nil
	}
	askOptional := func(label, current string, dst **string) error {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter to keep, - to clear)", label, oneLine(current)), a.out)
		if err != nil {
			return err
		}
		switch v {
		case "":
		case "-":
			empty := ""
			*dst = &empty
		default:
			*dst = &v
		}
		return nil
	}

	if err := ask("Name", skill.Name, &p.Name); err != nil {
		return err
	}
	if err := ask("Category", skill.Category, &p.Category); err != nil {
		return err
	}
	if err := ask("Level", skill.Level, &p.Level); err != nil {
		return err
	}
	if err := askOptional("Description", skill.Description, &p.Description); err != nil {
		return err
	}
	if err := askOptional("Goals", skill.Goals, &p.Goals); err != nil {
		return err
	}

	updated, found, err := a.skills.Update(ctx, skill.ID, p)
	if !found {
		if err != nil {
			return err
		}
		a.failure("Skill not found!")
		return nil
	}
	if err != nil && !errors.Is(err, common.ErrPersistence) {
		return err
	}

	a.success("Skill updated successfully!")
	a.println(a.render.SkillCard(updated))
	return err
}

// Show prints one skill in full.
func (a *App) Show(ctx context.Context, id string) error {
	skill, ok, err := a.pickSkill(id, "Enter skill id to show")
	if err != nil || !ok {
		return err
	}
	a.println(a.render.Detail(skill))
	return nil
}

// Delete removes a skill after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	skill, ok, err := a.pickSkill(id, "Enter skill id to delete")
	if err != nil || !ok {
		return err
	}

	yes, err := confirm(a.reader, fmt.Sprintf("Are you sure you want to delete %q?", skill.Name), a.out)
	if err != nil {
		return err
	}
	if !yes {
		a.info("Deletion cancelled.")
		return nil
	}

	deleted, err := a.skills.Delete(ctx, skill.ID)
	if !deleted {
		a.failure("Failed to delete skill!")
		return err
	}

	a.success("Skill deleted successfully!")
	return err
}

// Categories prints the distinct categories with their skill counts.
func (a *App) Categories(ctx context.Context) error {
	counts := make(map[string]int)
	for _, s := range a.skills.All() {
		counts[s.Category]++
	}
	a.println(a.render.Categories(a.skills.Categories(), counts))
	return nil
}

// pickSkill resolves id (prompting when empty) to a skill. A unique id prefix
// is accepted. ok is false, with the user already told, when nothing matches.
func (a *App) pickSkill(id, prompt string) (models.Skill, bool, error) {
	if id == "" {
		var err error
		if id, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return models.Skill{}, false, err
		}
	}
	if id == "" {
		a.failure("No skill id given!")
		return models.Skill{}, false, nil
	}

	if s, ok := a.skills.Get(id); ok {
		return s, true, nil
	}

	var match []models.Skill
	for _, s := range a.skills.All() {
		if strings.HasPrefix(s.ID, id) {
			match = append(match, s)
		}
	}

	switch len(match) {
	case 1:
		return match[0], true, nil
	case 0:
		a.failure("Skill not found!")
	default:
		a.failure(fmt.Sprintf("Id %q is ambiguous (%d skills match)!", id, len(match)))
	}
	return models.Skill{}, false, nil
}

// oneLine flattens s and caps it at 40 characters.
func oneLine(s string) string {
	r := []rune(strings.ReplaceAll(s, "\n", " "))
	if len(r) > 40 {
		return string(r[:37]) + "..."
	}
	return string(r)
}
