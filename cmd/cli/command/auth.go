package command

import (
	"fmt"
	"os"
	"strings"

	"bookhub/cmd/cli/authentication"
	"bookhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword prompts on the terminal without echoing. Tests replace it.
var readPassword = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(bytePassword)), nil
}

func newAuthCmd(opts *options) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
		Long:  `Register, log in to and log out of the bookhub API.`,
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new bookhub account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.RegisterRequest
			req.UserName, _ = cmd.Flags().GetString("username")
			req.Email, _ = cmd.Flags().GetString("email")
			password, err := passwordFlagOrPrompt(cmd)
			if err != nil {
				return err
			}
			req.Password = password

			response, err := client.NewHTTPClient(opts.apiURL).Register(&req)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			if err := saveSession(opts, response); err != nil {
				return err
			}

			success(cmd, "Registration successful, you are logged in.")
			fmt.Fprintf(cmd.OutOrStdout(), "UserID: %s\n", response.User.ID)
			return nil
		},
	}
	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your bookhub account",
		Long:  `Log in and store the session token. Logging in again invalidates the previous token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req client.LoginRequest
			req.Email, _ = cmd.Flags().GetString("email")
			password, err := passwordFlagOrPrompt(cmd)
			if err != nil {
				return err
			}
			req.Password = password

			response, err := client.NewHTTPClient(opts.apiURL).Login(&req)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := saveSession(opts, response); err != nil {
				return err
			}

			success(cmd, "Successfully logged in!")
			return nil
		},
	}
	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	loginCmd.MarkFlagRequired("email")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authentication.DeleteCredentials(); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			success(cmd, "Successfully logged out.")
			return nil
		},
	}

	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd)
	return authCmd
}

func passwordFlagOrPrompt(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}
	return readPassword("Password: ")
}

func saveSession(opts *options, response *client.AuthResponse) error {
	err := authentication.StoreCredentials(&authentication.StoredCredentials{
		Token:  response.Token,
		UserID: response.User.ID,
		Email:  response.User.Email,
		APIURL: opts.apiURL,
	})
	if err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}
