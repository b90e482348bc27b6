package cli

import (
	"github.com/spf13/cobra"

	"github.com/rahulcj/portfolio/internal/assets"
	"github.com/rahulcj/portfolio/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}

			static, err := assets.Static(a.cfg.StaticDir)
			if err != nil {
				return err
			}

			srv, err := server.New(server.Options{
				Site:     a.site,
				Static:   static,
				Projects: a.projectSource(static),
				BaseURL:  a.cfg.BaseURL,
				Log:      a.log,
			})
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context(), a.cfg.Addr())
		},
	}
	cmd.Flags().String("port", "8080", "Port to listen on (env PORT)")
	return cmd
}
