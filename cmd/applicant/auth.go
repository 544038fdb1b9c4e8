package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lshigami/admission/internal/dto"
	"github.com/spf13/cobra"
)

func passwordOrEnv(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv("ADMISSION_PASSWORD"); p != "" {
		return p, nil
	}
	return "", errors.New("--password or ADMISSION_PASSWORD is required")
}

func newSignupCmd(a *app) *cobra.Command {
	var req dto.SignupRequest
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an applicant account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Password, err = passwordOrEnv(req.Password); err != nil {
				return err
			}
			if err := a.api.Signup(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Account created for %s, you can now log in\n", req.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.NameInitial, "initial", "", "name initial")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordOrEnv(password)
			if err != nil {
				return err
			}
			resp, err := a.api.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			a.sess.SetLogin(resp.Token, resp.Email)
			if err := a.sess.Save(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s\n", resp.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (or ADMISSION_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sess.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.sess.AuthToken() == "" {
				return errNotLoggedIn
			}
			p, err := a.api.UserProfile(cmd.Context())
			if err != nil {
				return a.authFailure(err)
			}
			a.sess.SetProfile(p)
			if err := a.sess.Save(); err != nil {
				return err
			}
			return a.printYAML(p)
		},
	}
}
