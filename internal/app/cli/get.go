package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rlconnector/internal/app/config"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/logger"
)

func newGetCmd(configPath *string, factory serviceFactory) *cobra.Command {
	var (
		logLevel string
		compact  bool
	)

	cmd := &cobra.Command{
		Use:   "get <increment-id>",
		Short: "Print the order info snapshot for an order",
		Long:  "Print the order info snapshot for an order as JSON. Exits non-zero when return_code is not 0.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation failed: %w", err)
			}

			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)
			defer log.Sync()

			svc, cleanup, err := factory(cfg, log)
			if err != nil {
				return err
			}
			defer cleanup()

			snapshot := svc.Snapshot(cmd.Context(), args[0])

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(snapshot); err != nil {
				return err
			}

			if snapshot.ReturnCode != errorx.ReturnCodeOK {
				return fmt.Errorf("order %s not processed: %s", args[0], snapshot.ReturnMessage)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON")
	return cmd
}
