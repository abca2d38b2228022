// Package cli 定義留言板的命令列介面。
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"message_board/internal/logging"
	"message_board/internal/repository"
	"message_board/internal/storage"
	"message_board/pkg/config"
)

type rootOptions struct {
	configPath string
}

// NewRootCommand 建立 board 命令及其子命令
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "board",
		Short:         "A minimal message board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default: ./pkg/config/config.yaml or ./config.yaml)")

	cmd.AddCommand(newServeCommand(opts), newInitDBCommand(opts))
	return cmd
}

// bootstrap 載入配置並建立共用的日誌器與留言存取層
func (o *rootOptions) bootstrap() (*config.Config, *slog.Logger, *repository.Repositories, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.New(os.Stderr, cfg.Log)

	dialer, err := storage.NewDialer(cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, repository.NewRepositories(dialer), nil
}
