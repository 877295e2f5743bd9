package view

import "github.com/charmbracelet/lipgloss"

// Theme 終端機配色, 使用 ANSI 256 色
type Theme struct {
	NormalText  lipgloss.Color
	FaintText   lipgloss.Color
	Accent      lipgloss.Color
	Price       lipgloss.Color
	BorderColor lipgloss.Color
	Error       lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText:  lipgloss.Color("252"),
	FaintText:   lipgloss.Color("243"),
	Accent:      lipgloss.Color("212"),
	Price:       lipgloss.Color("114"),
	BorderColor: lipgloss.Color("238"),
	Error:       lipgloss.Color("203"),
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func (t Theme) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FaintText)
}

func (t Theme) price() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Price)
}

func (t Theme) box(width int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style
}

// Notice 操作結果提示, 例如確認訂單成功或失敗
func Notice(theme Theme, message string, err error) string {
	if err != nil {
		return lipgloss.NewStyle().Foreground(theme.Error).Render(message + ": " + err.Error())
	}
	return lipgloss.NewStyle().Foreground(theme.Price).Render(message)
}
