package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slacktime/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		router := httpapi.NewRouter(svc, viper.GetString("output_dir"), allowedOrigins())
		addr := fmt.Sprintf(":%d", viper.GetInt("port"))

		slog.Info("server listening",
			"addr", addr,
			"provider", viper.GetString("provider"),
			"timezone", viper.GetString("timezone"),
			"output_dir", viper.GetString("output_dir"))

		server := &http.Server{Addr: addr, Handler: router}
		return server.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
