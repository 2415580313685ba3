package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Text          lipgloss.Style
	Muted         lipgloss.Style
	Trigger       lipgloss.Style
	TriggerBorder lipgloss.Style
	Menu          lipgloss.Style
	MenuBorder    lipgloss.Style
	Item          lipgloss.Style
	ItemHover     lipgloss.Style
	Status        lipgloss.Style
	Key           lipgloss.Style
	Outline       lipgloss.Style
}

// Styles converts the palette into lipgloss styles.
func (t *Theme) Styles() Styles {
	menu := lipgloss.NewStyle().Foreground(t.Color(KeyMenuFg)).Background(t.Color(KeyMenuBg))

	hover := lipgloss.NewStyle().
		Foreground(t.Color(KeyItemHoverFg)).
		Background(t.Color(KeyItemHoverBg))
	if t.ReverseHover {
		hover = hover.Reverse(true)
	}

	return Styles{
		Text:          lipgloss.NewStyle().Foreground(t.Color(KeyText)),
		Muted:         lipgloss.NewStyle().Foreground(t.Color(KeyMuted)),
		Trigger:       lipgloss.NewStyle().Foreground(t.Color(KeyTriggerFg)).Background(t.Color(KeyTriggerBg)),
		TriggerBorder: lipgloss.NewStyle().Foreground(t.Color(KeyTriggerBorder)),
		Menu:          menu,
		MenuBorder:    lipgloss.NewStyle().Foreground(t.Color(KeyMenuBorder)).Background(t.Color(KeyMenuBg)),
		Item:          menu,
		ItemHover:     hover,
		Status:        lipgloss.NewStyle().Foreground(t.Color(KeyStatus)),
		Key:           lipgloss.NewStyle().Foreground(t.Color(KeyKey)).Bold(true),
		Outline:       lipgloss.NewStyle().Foreground(t.Color(KeyOutline)),
	}
}
