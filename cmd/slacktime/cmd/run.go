package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slacktime/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

var runCmd = &cobra.Command{
	Use:   "run [request.json]",
	Short: "Process one batch from a JSON file (or stdin) and exit",
	Long: `Reads the same JSON payload the HTTP API accepts, runs the pipeline
once, and prints where the report landed. Useful for cron jobs and for
trying a batch without standing up the server.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read request payload: %w", err)
		}

		var req core.BatchRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("decode request payload: %w", err)
		}

		svc, err := buildService()
		if err != nil {
			return err
		}
		result, err := svc.Process(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Batch complete"))
		line := func(label string, value any) {
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
		}
		line("Group", req.GroupName)
		line("Range", fmt.Sprintf("%s .. %s",
			result.Start.Format("2006-01-02"), result.End.Format("2006-01-02")))
		line("Mailboxes", result.TotalEmails)
		line("Processed", result.Processed)
		line("Business days", result.BusinessDays)
		line("Report", filepath.Join(viper.GetString("output_dir"), result.Artifact))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
