package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxfret/api"
)

func init() {
	flags := serveCmd.Flags()
	flags.String("addr", ":8080", "address to listen on")
	flags.StringSlice("origins", nil, "allowed CORS origins, all when empty")

	cobra.CheckErr(v.BindPFlag("server.addr", flags.Lookup("addr")))
	cobra.CheckErr(v.BindPFlag("server.origins", flags.Lookup("origins")))

	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chord and scale API",
	Long: `Serves the chord and scale queries over HTTP under /api/v1, plus a
websocket session at /api/v1/ws driving a fretboard state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, s, err := setup()
		if err != nil {
			return err
		}
		out, closeLog, err := cfg.LogOutput(os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()
		logger := cfg.Logger(out)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.New(s, api.Options{
			Origins: cfg.Server.Origins,
			Logger:  logger,
		})
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	},
}
