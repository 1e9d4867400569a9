package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Konsultn-Engineering/soql/cmd/soqlgen/cmd/render"
	"github.com/Konsultn-Engineering/soql/internal/logger"
)

var (
	Version string
	Commit  string

	RootCmd = &cobra.Command{
		Use:   "soqlgen",
		Short: "soqlgen renders SOQL queries from yaml definitions",
		Long: "soqlgen reads a yaml file of query definitions, builds every query with the " +
			"soql query builder and prints the rendered SOQL text.",
	}
	cfgFile string
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
		}
	}
	RootCmd.Version = strings.TrimSpace(fmt.Sprintf("%s %s", Version, Commit))

	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	RootCmd.PersistentFlags().String("log-format", logger.LogFormatTextValue, "logging format [text|json]")
	RootCmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)

	RootCmd.AddCommand(render.Cmd)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix("SOQLGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(render.Config); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
