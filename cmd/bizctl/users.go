package main

import (
	"context"
	"fmt"

	"github.com/bizdash/backend/internal/application/identity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newUsersCmd(e *env, newLogger func() (*zap.Logger, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Approve or revoke business owner accounts",
	}

	run := func(cmd *cobra.Command, email string, action func(*identity.AuthService, context.Context, string) (*identity.UserResponse, error)) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cfg, err := e.openConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		svc, cleanup, err := e.openAccount(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		user, err := action(svc, ctx, email)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s approved=%t\n", user.Email, user.Approved)
		return nil
	}

	approve := &cobra.Command{
		Use:   "approve <email>",
		Short: "Let an account sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], (*identity.AuthService).Approve)
		},
	}

	revoke := &cobra.Command{
		Use:   "revoke <email>",
		Short: "Withdraw approval and sign the account out everywhere",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], (*identity.AuthService).Revoke)
		},
	}

	cmd.AddCommand(approve, revoke)
	return cmd
}
