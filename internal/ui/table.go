package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
)

// newTable returns a table sized to its content. Long rows are never cut;
// the terminal wraps them instead.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == len(headers)-1:
				return TableMutedCellStyle
			default:
				return TableCellStyle
			}
		})
}

// RenderSettingsSection renders the fields of one section that exist on
// target as a table of description, value and document name.
func RenderSettingsSection(s *settings.Settings, section string, target settings.Target) string {
	t := newTable("Setting", "Value", "Name")
	for _, f := range s.Fields() {
		if f.Section != section || !f.Present(target) {
			continue
		}
		v := f.Value()
		if f.Kind == settings.KindText && v == "" {
			v = "(empty)"
		}
		t.Row(f.Description, v, f.Name)
	}
	return SectionTitleStyle.Render(section) + "\n" + t.Render()
}

// RenderButtonMaps renders every button mapping present on target.
func RenderButtonMaps(s *settings.Settings, target settings.Target) string {
	t := newTable("Mapping", "Assignments", "Name")
	for _, c := range s.ControllerMaps() {
		if !c.Present(target) {
			continue
		}
		parts := make([]string, 0, settings.MaxJP)
		for _, v := range c.Buttons {
			parts = append(parts, fmt.Sprintf("%#x", v))
		}
		t.Row(c.Description, strings.Join(parts, " "), c.Name)
	}
	return SectionTitleStyle.Render("Button Mappings") + "\n" + t.Render()
}

// RenderSettings renders every section followed by the button mappings.
func RenderSettings(s *settings.Settings, target settings.Target) string {
	parts := make([]string, 0, len(settings.Sections)+1)
	for _, sec := range settings.Sections {
		parts = append(parts, RenderSettingsSection(s, sec.Name, target))
	}
	parts = append(parts, RenderButtonMaps(s, target))
	return strings.Join(parts, "\n\n")
}

// RenderCorrections renders the values replaced by the sanitizer.
func RenderCorrections(cs []settings.Correction) string {
	t := newTable("Old", "New", "Name")
	for _, c := range cs {
		t.Row(c.Old, c.New, c.Field)
	}
	return WarningTitleStyle.Render(fmt.Sprintf(" %s  %d value(s) corrected", WarningMarker, len(cs))) + "\n" + t.Render()
}

// RenderAttempts renders the candidate locations a probe tried, in order.
func RenderAttempts(attempts []storage.Attempt) string {
	t := newTable("#", "Location", "Outcome")
	for i, a := range attempts {
		outcome := "accepted"
		if a.Err != nil {
			outcome = a.Err.Error()
		}
		t.Row(fmt.Sprintf("%d", i+1), a.Path, outcome)
	}
	return t.Render()
}
