package service

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sahayak-ai/sahayak/app/core"
)

type Options struct {
	ConfigPath string
	EnvFile    string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
	flagSet.StringVarP(&o.EnvFile, "env", "e", "", "load environment from file before reading config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "educational assistant api service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return err
		}
	}

	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	return serve(app)
}
