package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"pokedex-srv/pkg/pokedex"
)

var (
	colorError = lipgloss.Color("#e53935")
	colorMuted = lipgloss.Color("#8a94a6")
	colorTitle = lipgloss.Color("#ffcb05")
)

// styles binds the palette to w so that colors are dropped when w is not a terminal.
type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	error  lipgloss.Style
	border lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		title:  r.NewStyle().Bold(true).Foreground(colorTitle),
		muted:  r.NewStyle().Foreground(colorMuted),
		error:  r.NewStyle().Bold(true).Foreground(colorError),
		border: r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return s.cell
		})
}

func renderList(w io.Writer, list pokedex.PokemonList, hasNext bool) error {
	s := newStyles(w)
	items := list.Items()

	t := s.table("#", "NAME", "TYPES", "ID")
	for _, p := range items {
		t.Row(fmt.Sprintf("%03d", p.PokedexNumber), p.Name, typeNames(p.Types), p.ID)
	}

	summary := fmt.Sprintf("Showing %d of %d.", len(items), list.Total())
	if hasNext {
		summary += fmt.Sprintf(" More available: --pages %d", len(list.Pages)+1)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), s.muted.Render(summary))
	return err
}

func renderPokemon(w io.Writer, p pokedex.Pokemon) error {
	s := newStyles(w)

	abilities := make([]string, len(p.Abilities))
	for i, a := range p.Abilities {
		abilities[i] = a.Name
	}
	fmt.Fprintln(w, s.title.Render(fmt.Sprintf("#%03d %s", p.PokedexNumber, p.Name)))
	fmt.Fprintf(w, "%s %s\n", s.muted.Render("Types:    "), typeNames(p.Types))
	fmt.Fprintf(w, "%s %s\n", s.muted.Render("Abilities:"), orDash(strings.Join(abilities, ", ")))

	if len(p.Moves) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return renderMoves(w, p.Moves)
}

func renderMoves(w io.Writer, moves []pokedex.Move) error {
	s := newStyles(w)
	if len(moves) == 0 {
		_, err := fmt.Fprintln(w, s.muted.Render("No moves."))
		return err
	}

	t := s.table("LV", "MOVE", "TYPE", "CLASS", "POWER", "ACC", "PP")
	for _, m := range moves {
		typ := "-"
		if m.Type != nil {
			typ = m.Type.Name
		}
		t.Row(fmt.Sprint(m.Level), m.Name, typ, orDash(m.DamageClass), intOrDash(m.Power), intOrDash(m.Accuracy), intOrDash(m.PP))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderSession(w io.Writer, sess pokedex.Session) error {
	s := newStyles(w)
	role := sess.User.Role
	if role == "" {
		role = "VIEWER"
	}
	fmt.Fprintf(w, "Logged in as %s (%s). Token expires %s.\n",
		s.title.Render(sess.User.Username), role, sess.ExpiresAt.Format("2006-01-02 15:04"))
	_, err := fmt.Fprintf(w, "export POKEDEX_TOKEN=%s\n", sess.AccessToken)
	return err
}

// toast prints err the way the web client shows an error toast, plus a hint
// when running the command again may help.
func toast(w io.Writer, title string, err error) {
	s := newStyles(w)
	msg := err.Error()
	var apiErr *pokedex.APIError
	if errors.As(err, &apiErr) || errors.Is(err, pokedex.ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		msg = pokedex.Message(err)
	}
	fmt.Fprintf(w, "%s %s\n", s.error.Render("✖ "+title+":"), msg)
	if pokedex.Retryable(err) {
		fmt.Fprintln(w, s.muted.Render("  Retry: run the command again."))
	}
}

func typeNames(types []pokedex.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return orDash(strings.Join(names, "/"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
