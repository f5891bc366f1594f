package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account commands",
	}

	cmd.AddCommand(newUserSignupCmd())
	cmd.AddCommand(newUserLoginCmd())
	cmd.AddCommand(newUserListCmd())

	return cmd
}

func newUserSignupCmd() *cobra.Command {
	var (
		name, email, password string
		ageGroup              int
		styles                []string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := SignupRequest{
				Name:             name,
				Email:            email,
				Password:         password,
				StylePreferences: styles,
			}
			if cmd.Flags().Changed("age-group") {
				if !model.ValidAgeGroup(ageGroup) {
					return fmt.Errorf("--age-group must be one of %v", model.AgeGroups())
				}
				req.AgeGroup = &ageGroup
			}

			result, err := client.Signup(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(*result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	cmd.Flags().IntVar(&ageGroup, "age-group", 0, "Age group: 10, 20, 30, 40 or 50")
	cmd.Flags().StringSliceVar(&styles, "style", nil, "Preferred style (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials of an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(*result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.Users(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(users)
			return nil
		},
	}
}
