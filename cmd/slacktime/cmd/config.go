package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := map[string]any{
			"port":                    viper.GetInt("port"),
			"provider":                viper.GetString("provider"),
			"timezone":                viper.GetString("timezone"),
			"templates_dir":           viper.GetString("templates_dir"),
			"template_file":           viper.GetString("template_file"),
			"output_dir":              viper.GetString("output_dir"),
			"tenant_id":               viper.GetString("tenant_id"),
			"client_id":               viper.GetString("client_id"),
			"client_secret_set":       viper.GetString("client_secret") != "",
			"google_credentials_file": viper.GetString("google_credentials_file"),
			"frontend_url":            viper.GetString("frontend_url"),
			"log_level":               viper.GetString("log_level"),
			"log_json":                viper.GetBool("log_json"),
		}
		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
