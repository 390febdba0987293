package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the server session",
	Long:  "Log in to or out of the resume server. The bearer token is stored in the config file.",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the resume server",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		email, password := credentials(cmd)

		token, err := application.Remote.Login(cmd.Context(), email, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error logging in: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set("token", token); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing token: %v\n", err)
			os.Exit(1)
		}
		application.Config.Token = token

		// A fresh login starts a fresh session, so the next command
		// fetches the remote collection again.
		application.Remote.ResetSession()

		fmt.Println("✓ Logged in")
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the resume server",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		name, _ := cmd.Flags().GetString("name")
		email, password := credentials(cmd)

		token, err := application.Remote.Register(cmd.Context(), email, password, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error registering: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set("token", token); err != nil {
			fmt.Fprintf(os.Stderr, "Error storing token: %v\n", err)
			os.Exit(1)
		}
		application.Config.Token = token
		application.Remote.ResetSession()

		fmt.Println("✓ Account created and logged in")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the resume server",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		if err := config.Set("token", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing token: %v\n", err)
			os.Exit(1)
		}
		application.Config.Token = ""
		application.Remote.ResetSession()

		fmt.Println("✓ Logged out")
	},
}

// credentials reads email and password from flags, prompting for
// whichever is missing.
func credentials(cmd *cobra.Command) (string, string) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print(labelStyle.Render("Email: "))
		email, _ = reader.ReadString('\n')
		email = strings.TrimSpace(email)
	}
	if password == "" {
		fmt.Print(labelStyle.Render("Password: "))
		password, _ = reader.ReadString('\n')
		password = strings.TrimSpace(password)
	}

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Both email and password are required")
		os.Exit(1)
	}
	return email, password
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "Account email")
		c.Flags().String("password", "", "Account password")
	}
	registerCmd.Flags().String("name", "", "Display name")
}
