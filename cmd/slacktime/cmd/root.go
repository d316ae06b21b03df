package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slacktime/internal/adapter/colombia"
	"slacktime/internal/adapter/google"
	"slacktime/internal/adapter/outlook"
	"slacktime/internal/core"
	"slacktime/internal/ledger"
	"slacktime/internal/logging"
	"slacktime/internal/render"
	"slacktime/internal/service"
	"slacktime/internal/workdays"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "slacktime",
	Short: "Meeting-time reports from your team's calendars",
	Long: `slacktime pulls every requested mailbox's calendar from the company
directory, buckets the meetings by type, folds in the HR benefits
ledger and the business-day count, and writes the whole thing into
the report spreadsheet template.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(viper.GetBool("log_json"), logging.ParseLevel(viper.GetString("log_level")))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Int("port", 3001, "HTTP port for serve mode")
	rootCmd.PersistentFlags().String("timezone", "America/Bogota", "default IANA zone for events without one")
	rootCmd.PersistentFlags().String("provider", "outlook", "calendar directory backend (outlook, google)")
	rootCmd.PersistentFlags().String("templates-dir", "plantillas", "directory holding the report template and benefits workbook")
	rootCmd.PersistentFlags().String("output-dir", "output", "directory for generated reports")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))
	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("templates_dir", rootCmd.PersistentFlags().Lookup("templates-dir"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// .env first, so viper's env lookup sees its values. Absence is fine.
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SLACKTIME")
	viper.AutomaticEnv()

	// The Azure app registration traditionally lives in bare env vars.
	viper.BindEnv("tenant_id", "SLACKTIME_TENANT_ID", "TENANT_ID")
	viper.BindEnv("client_id", "SLACKTIME_CLIENT_ID", "CLIENT_ID")
	viper.BindEnv("client_secret", "SLACKTIME_CLIENT_SECRET", "CLIENT_SECRET")
	viper.BindEnv("frontend_url", "SLACKTIME_FRONTEND_URL", "FRONTEND_URL")

	viper.SetDefault("port", 3001)
	viper.SetDefault("timezone", "America/Bogota")
	viper.SetDefault("provider", "outlook")
	viper.SetDefault("templates_dir", "plantillas")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("template_file", "Slack Time General.xlsx")
	viper.SetDefault("google_credentials_file", "service-account.json")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_json", false)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildService wires the whole pipeline from the resolved config.
func buildService() (*service.Service, error) {
	provider, err := buildProvider()
	if err != nil {
		return nil, err
	}

	templatePath := filepath.Join(viper.GetString("templates_dir"), viper.GetString("template_file"))
	return service.New(
		provider,
		workdays.NewCounter(colombia.Provider{}),
		ledger.XLSXSource{Dir: viper.GetString("templates_dir")},
		render.NewExcelRenderer(templatePath, viper.GetString("output_dir")),
		viper.GetString("timezone"),
	), nil
}

func buildProvider() (core.EventProvider, error) {
	switch name := viper.GetString("provider"); name {
	case "outlook":
		return outlook.NewAdapter(
			viper.GetString("tenant_id"),
			viper.GetString("client_id"),
			viper.GetString("client_secret"),
			viper.GetString("timezone"),
		), nil
	case "google":
		return google.NewAdapter(viper.GetString("google_credentials_file")), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: outlook, google)", name)
	}
}

// allowedOrigins is the CORS allow-list: the configured frontend plus
// the hosted frontends this backend has always served.
func allowedOrigins() []string {
	origins := []string{
		"https://slacktime-frontend.vercel.app",
		"https://slacktime.vercel.app",
	}
	if frontend := viper.GetString("frontend_url"); frontend != "" {
		origins = append(origins, frontend)
	} else {
		origins = append(origins, "http://localhost:4200")
	}
	return origins
}
