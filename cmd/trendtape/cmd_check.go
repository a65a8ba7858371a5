package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zappabad/trendtape/internal/login"
)

// errCheckFailed makes a failed check exit non-zero.
var errCheckFailed = errors.New("check failed")

type verdict interface {
	fmt.Stringer
	OK() bool
}

func report(cmd *cobra.Command, v verdict) error {
	fmt.Fprintln(cmd.OutOrStdout(), v.String())
	if !v.OK() {
		return errCheckFailed
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check an account name or password the way the login form does",
	}

	checkCmd.AddCommand(
		&cobra.Command{
			Use:   "account [name]",
			Short: "Check an account name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return report(cmd, login.CheckAccount(args[0]))
			},
		},
		&cobra.Command{
			Use:   "password [password] [repeat]",
			Short: "Check a password, and its confirmation when given",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := report(cmd, login.CheckPassword(args[0])); err != nil {
					return err
				}
				if len(args) == 2 {
					return report(cmd, login.CheckRepeat(args[0], args[1]))
				}
				return nil
			},
		},
	)
	return checkCmd
}
