package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-softjobs/models"
)

// print writes v as indented JSON in JSON mode, otherwise as a styled view.
func (a *App) print(v any) error {
	if a.jsonOutput {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	var view string
	switch v := v.(type) {
	case models.RegisterResponse:
		view = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Registered"),
			renderUsers([]models.User{v.User}),
			renderToken(v.Token),
		)
	case models.LoginResponse:
		view = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Logged in"),
			renderToken(v.Token),
		)
	case []models.User:
		view = lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(fmt.Sprintf("Profile (%d)", len(v))),
			renderUsers(v),
		)
	default:
		return fmt.Errorf("no view for %T", v)
	}

	_, err := fmt.Fprintln(a.out, view)
	return err
}

func renderUsers(users []models.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			orDash(u.Role),
			orDash(u.LanguagePreference),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "EMAIL", "ROLE", "LANGUAGE").
		Rows(rows...).
		String()
}

func renderToken(token string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		tokenStyle.Render(token),
		helpStyle.Render("use: profile -token <token>"),
	)
}

func orDash(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "-"
	}
	return *s
}
