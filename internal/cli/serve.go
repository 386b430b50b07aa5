package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/lease-desk/internal/form"
	"github.com/evcraddock/lease-desk/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form",
		Long:  "Start an HTTP server for the property and lease entry form. Nothing is saved; the current record is lost when the server stops.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				cfg, err := resolveConfig()
				if err != nil {
					return err
				}
				port = cfg.Port
			}
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", defaultPort, "port to listen on (default from config)")

	return cmd
}

func runServe(port int) error {
	srv, err := web.NewServer(form.NewController())
	if err != nil {
		return err
	}
	return srv.ListenAndServe(port)
}
