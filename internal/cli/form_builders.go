package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/szabadkai/quarterback/internal/cli/formatter"
	"github.com/szabadkai/quarterback/internal/domain"
	"github.com/szabadkai/quarterback/internal/service"
)

func quarterbackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateICEValue(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 10 {
		return fmt.Errorf("enter a number from 1 to 10")
	}
	return nil
}

// iceInput returns a huh.Input for one ICE dimension.
func iceInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("5").
		Value(value).
		Validate(validateICEValue)
}

func projectTypeOptions() []huh.Option[string] {
	types := make([]string, 0, len(domain.ValidProjectTypes))
	for t := range domain.ValidProjectTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	opts := make([]huh.Option[string], 0, len(types))
	for _, t := range types {
		opts = append(opts, huh.NewOption(t, t))
	}
	return opts
}

// runProjectForm collects a new project's fields interactively. The form's
// answers are written into input.
func runProjectForm(input *service.ProjectInput) error {
	impact := strconv.Itoa(input.ICEImpact)
	confidence := strconv.Itoa(input.ICEConfidence)
	effort := strconv.Itoa(input.ICEEffort)
	if input.Type == "" {
		input.Type = domain.DefaultProjectType
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("Billing revamp").
				Value(&input.Name).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Type").
				Options(projectTypeOptions()...).
				Value(&input.Type),
		),
		huh.NewGroup(
			iceInput("Impact (1-10)", &impact),
			iceInput("Confidence (1-10)", &confidence),
			iceInput("Effort (1-10)", &effort),
		),
	).WithTheme(quarterbackHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	// Validated above; errors here are unreachable.
	input.ICEImpact, _ = strconv.Atoi(impact)
	input.ICEConfidence, _ = strconv.Atoi(confidence)
	input.ICEEffort, _ = strconv.Atoi(effort)
	return nil
}
