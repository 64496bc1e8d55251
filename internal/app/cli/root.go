package cli

import (
	"context"

	"github.com/spf13/cobra"

	"rlconnector/internal/app/bootstrap"
	"rlconnector/internal/app/config"
	"rlconnector/internal/app/domains/services/svorderinfo"
	"rlconnector/internal/app/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
)

// serviceFactory 按配置创建订单快照服务，返回的 cleanup 负责释放连接
type serviceFactory func(cfg *config.Config, log logger.Logger) (*svorderinfo.OrderInfoService, func(), error)

func openService(cfg *config.Config, log logger.Logger) (*svorderinfo.OrderInfoService, func(), error) {
	infra, cleanup, err := bootstrap.OpenInfra(context.Background(), cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return bootstrap.NewOrderInfoService(infra, cfg, log, nil), cleanup, nil
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "orderinfo",
		Short:         "Inspect Returnless order info snapshots",
		Long:          "orderinfo builds the same order info snapshot the HTTP API serves, straight from the Magento database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "path to config file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGetCmd(&configPath, factory))
	return cmd
}

// Execute 运行命令行
func Execute() error {
	return newRootCmd(openService).Execute()
}
