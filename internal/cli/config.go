package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if file := v.ConfigFileUsed(); file != "" {
				fmt.Fprintf(out, "# config file: %s\n", file)
			}
			data, err := yaml.Marshal(v.AllSettings())
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}
