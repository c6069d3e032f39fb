// Package commands implements the splitledger command line.
package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/buildinfo"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

const defaultServerURL = "http://localhost:8080"

// app carries the persistent flags shared by every subcommand.
type app struct {
	configPath string
	serverURL  string
	jsonOutput bool

	cfg *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "splitledger",
		Short:   "Split bills between people and track who has paid",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	serverURL := os.Getenv("SPLITLEDGER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to splitledger.yaml")
	flags.StringVar(&a.serverURL, "server", serverURL, "ledger server URL (env SPLITLEDGER_URL)")
	flags.BoolVar(&a.jsonOutput, "json", false, "print raw JSON responses")

	rootCmd.AddCommand(
		newServeCommand(a),
		newVersionCommand(),
		newUserCommand(a),
		newAccountCommand(a),
		newBillCommand(a),
	)

	return rootCmd
}

// config loads the configuration once per invocation.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) client() apiconnect.LedgerServiceClient {
	return apiconnect.NewLedgerServiceClient(http.DefaultClient, strings.TrimSuffix(a.serverURL, "/"))
}

// printJSON writes msg as indented JSON when --json is set and reports
// whether it did.
func (a *app) printJSON(cmd *cobra.Command, msg any) (bool, error) {
	if !a.jsonOutput {
		return false, nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(msg); err != nil {
		return true, fmt.Errorf("encoding response: %w", err)
	}
	return true, nil
}

// rpcError turns a failed call into the ledger error it carries, if any.
func rpcError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, service.FromConnectError(err))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "splitledger", buildinfo.String())
		},
	}
}
