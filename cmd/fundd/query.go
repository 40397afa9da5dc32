package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/pushchain/fund-distributor/fundClient/api"
)

// Output formats
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

const (
	flagOutput = "output"
	flagAPI    = "api"
	flagLimit  = "limit"
	flagKey    = "page-key"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// QueryOutput wraps query data with the ledger height it was read at.
type QueryOutput struct {
	Height int64       `yaml:"height" json:"height"`
	Data   interface{} `yaml:"data" json:"data"`
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Querying commands, served by a running `fundd start`",
	}

	cmd.PersistentFlags().String(flagAPI, "", "API base URL (default: http://localhost:<query_server_port>)")

	cmd.AddCommand(
		simpleQueryCmd("voting-contract", "Query the voting contract and distribution height", "/api/v1/voting-contract"),
		simpleQueryCmd("total-power", "Query the recorded total voting power", "/api/v1/total-power"),
		balancesCmd(),
		addressQueryCmd("claims", "Query the cumulative claims of an address", "/api/v1/claims/"),
		addressQueryCmd("entitlements", "Preview what a claim-all by an address would pay", "/api/v1/entitlements/"),
		payoutsCmd(),
	)
	return cmd
}

func simpleQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, path, nil)
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func addressQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [address]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, path+url.PathEscape(args[0]), nil)
		},
	}
	addOutputFlag(cmd)
	return cmd
}

func balancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balances [token|native]",
		Short: "Query the unclaimed balances of one ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if limit, _ := cmd.Flags().GetUint64(flagLimit); limit > 0 {
				params.Set("limit", strconv.FormatUint(limit, 10))
			}
			if key, _ := cmd.Flags().GetString(flagKey); key != "" {
				if _, err := base64.URLEncoding.DecodeString(key); err != nil {
					return fmt.Errorf("invalid page key: %w", err)
				}
				params.Set("key", key)
			}
			return runQuery(cmd, "/api/v1/balances/"+url.PathEscape(args[0]), params)
		},
	}
	cmd.Flags().Uint64(flagLimit, 0, "page size (0 = server default)")
	cmd.Flags().String(flagKey, "", "next key from a previous page, url-safe base64")
	addOutputFlag(cmd)
	return cmd
}

func payoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts [address]",
		Short: "Query journaled payouts, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if len(args) == 1 {
				params.Set("recipient", args[0])
			}
			limit, _ := cmd.Flags().GetInt(flagLimit)
			params.Set("limit", strconv.Itoa(limit))
			return runQuery(cmd, "/api/v1/payouts", params)
		},
	}
	cmd.Flags().Int(flagLimit, 100, "maximum number of payouts")
	addOutputFlag(cmd)
	return cmd
}

func runQuery(cmd *cobra.Command, path string, params url.Values) error {
	base, err := apiBaseURL(cmd)
	if err != nil {
		return err
	}

	target := base + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	resp, err := httpClient.Get(target)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("server error: %s", errResp.Error)
	}

	var out QueryOutput
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return printOutput(cmd.OutOrStdout(), out, outputFormat(cmd))
}

func apiBaseURL(cmd *cobra.Command) (string, error) {
	if base, _ := cmd.Flags().GetString(flagAPI); base != "" {
		return base, nil
	}

	_, cfg, _, err := loadConfig(cmd)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return fmt.Sprintf("http://localhost:%d", cfg.QueryServerPort), nil
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOutput, "o", OutputFormatYAML, "Output format (yaml|json)")
}

func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString(flagOutput)
	if err != nil {
		return OutputFormatYAML
	}
	return format
}

// printOutput prints the output in the specified format
func printOutput(w io.Writer, data interface{}, format string) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
