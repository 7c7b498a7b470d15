package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authForce bool

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorise access to Google Drive",
	Long: `Obtains a Google Drive token and stores it in the token cache. A cached
token is reused or refreshed when possible; otherwise a browser window is
opened for authorisation. Use --force to authorise again regardless.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().BoolVar(&authForce, "force", false, "ignore the cached token and authorise again")
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	creds := newCredentials(cfg, cmd.ErrOrStderr())

	if authForce {
		if err := creds.Login(ctx); err != nil {
			return fmt.Errorf("authorise: %w", err)
		}
	} else {
		ts, err := creds.Obtain(ctx)
		if err != nil {
			return fmt.Errorf("authorise: %w", err)
		}
		if _, err := ts.Token(); err != nil {
			return fmt.Errorf("authorise: %w", err)
		}
	}

	cmd.Printf("Token saved to %s\n", creds.TokenFile())
	return nil
}
