package render

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Konsultn-Engineering/soql/internal/config"
	"github.com/Konsultn-Engineering/soql/internal/definition"
	"github.com/Konsultn-Engineering/soql/internal/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "render [file]",
		Short: "render every query of a definitions file to SOQL",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if len(args) == 1 {
				Config.Render.File = args[0]
			}

			if err := run(Config, os.Stdout); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = config.NewConfig()
)

func init() {
	fileFlagName := "file"
	Cmd.Flags().StringP(fileFlagName, "f", "", "path to the yaml definitions file")
	flag := Cmd.Flags().Lookup(fileFlagName)
	if err := viper.BindPFlag("render.file", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	cacheSizeFlagName := "cache-size"
	Cmd.Flags().Int(cacheSizeFlagName, Config.Render.CacheSize, "render cache entries, 0 disables the cache")
	flag = Cmd.Flags().Lookup(cacheSizeFlagName)
	if err := viper.BindPFlag("render.cache_size", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	outputFlagName := "output"
	Cmd.Flags().StringP(outputFlagName, "o", config.OutputText, "output format. possible values [text|yaml]")
	flag = Cmd.Flags().Lookup(outputFlagName)
	if err := viper.BindPFlag("render.output", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}

func run(cfg *config.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Render.File == "" {
		return errors.New("--file or a positional file argument is required")
	}

	file, err := definition.Load(cfg.Render.File)
	if err != nil {
		return err
	}

	renderer, err := definition.NewRenderer(cfg.Render.CacheSize, log.Logger)
	if err != nil {
		return errors.Wrap(err, "error creating renderer")
	}
	results, err := renderer.RenderAll(file)
	if err != nil {
		return err
	}

	return write(out, cfg.Render.Output, results)
}

func write(out io.Writer, format string, results []definition.Result) error {
	switch format {
	case config.OutputYaml:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return errors.Wrap(err, "error encoding results")
		}
		return enc.Close()
	default:
		for _, r := range results {
			if _, err := fmt.Fprintf(out, "%s\t%s\n", r.Name, r.SOQL); err != nil {
				return err
			}
		}
	}
	return nil
}
