// Package kinetrad assembles the kinetra API server command.
package kinetrad

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kinetra/kinetra/internal/apiserver"
	"github.com/kinetra/kinetra/internal/apiserver/config"
	"github.com/kinetra/kinetra/internal/apiserver/options"
	"github.com/kinetra/kinetra/pkg/logger"
)

const (
	// AppName is the server binary name.
	AppName = "kinetrad"
)

// NewCommand creates the kinetrad root command.
func NewCommand() *cobra.Command {
	opts := options.NewOptions()
	var configFile string
	var debug bool

	cmd := &cobra.Command{
		Use:   AppName,
		Short: "kinetrad is the kinetra fitness assistant API server",
		Long: `The kinetra API server exposes the AI fitness assistant: chat with
tool calling, meal photo analysis, and conversation history, backed by
user-scoped persistent stores.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config file %q: %w", configFile, err)
				}
				if err := viper.Unmarshal(opts); err != nil {
					return fmt.Errorf("failed to unmarshal config: %w", err)
				}
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			logPath := fmt.Sprintf("%s/%s.log", AppName, AppName)
			if err := logger.InitLog(logPath); err != nil {
				return err
			}
			defer logger.FlushLog()
			logger.SetDebug(debug)

			logger.Info("[Kinetrad] starting with options: %s", opts.String())

			cfg, err := config.CreateConfigFromOptions(opts)
			if err != nil {
				return err
			}

			return apiserver.Run(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configFile, "config", "c", "", "Path to the configuration file (YAML/JSON/TOML).")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging.")
	opts.AddFlags(fs)
	_ = viper.BindPFlags(fs)

	return cmd
}
