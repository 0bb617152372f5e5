package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/khrees2412/careerpivot/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment web form and JSON API",
	Example: `  careerpivot serve
  careerpivot serve --addr :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = a.Config.ListenAddr
		}
		if a.Config.LogMode == "prod" || a.Config.LogMode == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		srv, err := server.NewServer(server.RouterConfig{
			Handler:     server.NewHandlerFromApp(a),
			Log:         a.Log,
			CORSOrigins: a.Config.CORSOrigins,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Serving the assessment on http://localhost%s\n", addr)
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (defaults to listen_addr from config)")
}
