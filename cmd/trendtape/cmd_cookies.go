package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/zappabad/trendtape/internal/cookie"
)

func newCookiesCmd(a *cli) *cobra.Command {
	cookiesCmd := &cobra.Command{
		Use:   "cookies",
		Short: "Inspect the remembered seed and account",
		Long: `Manage the cookie jar where trendtape remembers state between runs.

Available subcommands:
  list   - Show every live cookie
  get    - Print one cookie, or one of its attributes
  delete - Forget a cookie
  purge  - Drop expired cookies`,
	}

	var attr string
	getCmd := &cobra.Command{
		Use:   "get [name]",
		Short: "Print a cookie's value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var v string
			if attr != "" {
				v, err = store.GetAttr(cmd.Context(), args[0], attr)
			} else {
				v, err = store.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	getCmd.Flags().StringVar(&attr, "attr", "", "print only this attribute (e.g. seed, account)")

	cookiesCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show every live cookie",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				cookies, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(cookies) == 0 {
					fmt.Fprintln(out, "no cookies")
					return nil
				}
				for _, c := range cookies {
					fmt.Fprintf(out, "%s\t%s\t%s\n", c.Name, c.Value, c.Expires.UTC().Format(http.TimeFormat))
				}
				return nil
			},
		},
		getCmd,
		&cobra.Command{
			Use:   "delete [name]",
			Short: "Forget a cookie",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := cookie.ValidateName(args[0]); err != nil {
					return err
				}
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				return store.Delete(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "purge",
			Short: "Drop expired cookies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				n, err := store.Purge(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d\n", n)
				return nil
			},
		},
	)
	return cookiesCmd
}
