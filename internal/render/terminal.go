package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/state"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	editingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Terminal renders a view for the line-oriented client.
func Terminal(v state.View) string {
	var b strings.Builder

	switch v := v.(type) {
	case state.AnonymousView:
		b.WriteString(headingStyle.Render("Log in or sign up"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("email:"), v.Email)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("password:"), strings.Repeat("*", len(v.Password)))

	case state.AuthenticatedView:
		b.WriteString(headingStyle.Render(v.SubmitLabel))
		if v.Mode == state.Update {
			b.WriteString(" " + editingStyle.Render(fmt.Sprintf("(editing %s)", v.EditingID)))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("title:"), v.Title)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("content:"), v.Content)

		b.WriteString("\n")
		b.WriteString(headingStyle.Render(fmt.Sprintf("Posts (%d)", len(v.Posts))))
		b.WriteString("\n")
		for _, post := range v.Posts {
			b.WriteString(Card(post, v.Mode == state.Update && post.ID == v.EditingID))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func Card(post model.Post, editing bool) string {
	header := titleStyle.Render(post.Title) + " " + labelStyle.Render("#"+string(post.ID))
	if editing {
		header += " " + editingStyle.Render("editing")
	}
	return cardStyle.Render(header + "\n" + post.Content)
}

// Toast renders a notification as a single line.
func Toast(n model.Notification) string {
	style := successStyle
	if n.IsError() {
		style = errorStyle
	}

	line := style.Render(n.Title)
	if n.Description != "" {
		line += " " + labelStyle.Render(n.Description)
	}
	return line
}
