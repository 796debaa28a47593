package cli

import (
	"fmt"

	"github.com/mchmarny/modelrep/pkg/auth"
	"github.com/urfave/cli/v2"
)

var (
	clientIDFlag = &cli.StringFlag{
		Name:  "client-id",
		Usage: "GitHub OAuth app client ID for the device flow",
	}

	tokenFlag = &cli.StringFlag{
		Name:  "token",
		Usage: "Token value to store directly (skips the device flow)",
	}

	genAIKeyFlag = &cli.StringFlag{
		Name:  "genai-key",
		Usage: "Analysis-service API key to store",
	}

	authCmd = &cli.Command{
		Name:            "auth",
		Usage:           "Manage API credentials",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Store credentials in the system keyring",
				UsageText: `modelrep auth login --token ghp_...              # store a GitHub token
   modelrep auth login --client-id <id>             # GitHub device flow
   modelrep auth login --genai-key <key>            # analysis-service key`,
				Action: cmdAuthLogin,
				Flags: []cli.Flag{
					clientIDFlag,
					tokenFlag,
					genAIKeyFlag,
				},
			},
			{
				Name:   "logout",
				Usage:  "Remove the stored GitHub token",
				Action: cmdAuthLogout,
			},
		},
	}
)

func cmdAuthLogin(c *cli.Context) error {
	if key := c.String(genAIKeyFlag.Name); key != "" {
		if err := auth.SaveGenAIKey(key); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "analysis-service key saved")
		return nil
	}

	if token := c.String(tokenFlag.Name); token != "" {
		if err := auth.SaveGitHubToken(token); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, "GitHub token saved")
		return nil
	}

	clientID := c.String(clientIDFlag.Name)
	if clientID == "" {
		return cli.ShowSubcommandHelp(c)
	}

	dc, err := auth.GetDeviceCode(c.Context, clientID)
	if err != nil {
		return fmt.Errorf("failed to start device flow: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Open %s and enter code: %s\n", dc.VerificationURL, dc.UserCode)

	token, err := auth.WaitForToken(c.Context, clientID, dc)
	if err != nil {
		return fmt.Errorf("device flow failed: %w", err)
	}
	if err := auth.SaveGitHubToken(token); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "GitHub token saved")
	return nil
}

func cmdAuthLogout(c *cli.Context) error {
	if err := auth.DeleteGitHubToken(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "GitHub token removed")
	return nil
}
