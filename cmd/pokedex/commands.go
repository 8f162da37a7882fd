package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List Pokémon, loading pages in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			list, err := a.catalog.Load(ctx)
			if err != nil {
				return err
			}
			for len(list.Pages) < pages && a.catalog.HasNextPage() {
				if list, err = a.catalog.FetchNextPage(ctx); err != nil {
					return err
				}
			}
			return renderList(cmd.OutOrStdout(), list, a.catalog.HasNextPage())
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a Pokémon with its types, abilities and moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.catalog.Pokemon(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderPokemon(cmd.OutOrStdout(), p)
		},
	}
}

func newMovesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "moves <id>",
		Short: "List the moves a Pokémon learns, by level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := a.catalog.Moves(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderMoves(cmd.OutOrStdout(), moves)
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a Pokémon (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.catalog.Load(ctx); err != nil {
				return err
			}
			if err := a.catalog.Delete(ctx, args[0]); err != nil {
				return err
			}
			list, _ := a.catalog.List()
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s. %d Pokémon remaining.\n", args[0], list.Total())
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and print a token for POKEDEX_TOKEN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			return renderSession(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a viewer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.Register(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			return renderSession(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
