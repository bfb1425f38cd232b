// Package cli wires the setcookie command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aatuh/setcookie"
	"github.com/aatuh/setcookie/internal/config"
	"github.com/aatuh/setcookie/internal/logger"
)

// NewRootCmd returns the root command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgFile string
		debug   bool
	)

	root := &cobra.Command{
		Use:   "setcookie",
		Short: "Encode Set-Cookie header values",
		Long: `setcookie renders Set-Cookie header values with a fixed attribute order
and SameSite support. Cookies come from flags or from the "cookies" list
of a YAML config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, cfgFile); err != nil {
				return err
			}
			l := logger.New(config.LogSettings(v), cmd.ErrOrStderr())
			if debug {
				l = l.Level(zerolog.DebugLevel)
			}
			setcookie.SetLogger(l)
			cmd.SetContext(l.WithContext(cmd.Context()))
			l.Debug().Str("config", v.ConfigFileUsed()).Msg("configuration loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./setcookie.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Use debug level logging")

	root.AddCommand(newEncodeCmd(v), newConfigCmd(v))
	return root
}

// Execute runs the root command against os.Args.
func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}
