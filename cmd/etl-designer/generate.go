package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go-etl-designer/internal/config"
	"go-etl-designer/internal/model"
	"go-etl-designer/internal/pipeline"
	"go-etl-designer/pkg/utils"
)

func newGenerateCmd() *cobra.Command {
	var (
		pipelinePath string
		source       string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the pandas script for a pipeline definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger()

			def, err := pipeline.LoadDefinition(pipelinePath)
			if err != nil {
				return err
			}
			if source != "" {
				def.Source = source
			}

			reg := buildRegistry(def, logger)
			script := pipeline.GenerateTo(model.SourceDescriptor{Name: def.Source}, reg.Steps(), def.Output)

			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), script)
				return nil
			}

			path, err := utils.NewOutputManager(filepath.Dir(outPath)).WriteFile(filepath.Base(outPath), script+"\n")
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Int("steps", reg.Len()).Msg("script written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&pipelinePath, "pipeline", "p", "", "pipeline definition (YAML or JSON)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "override the source file name")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the script here instead of stdout (e.g. "+pipeline.ScriptFileName+")")
	cmd.MarkFlagRequired("pipeline")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var pipelinePath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the display label of every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := pipeline.LoadDefinition(pipelinePath)
			if err != nil {
				return err
			}

			reg := buildRegistry(def, cliLogger())
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(reg.Labels(), "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pipelinePath, "pipeline", "p", "", "pipeline definition (YAML or JSON)")
	cmd.MarkFlagRequired("pipeline")
	return cmd
}

// buildRegistry loads the valid steps of def, warning about the ones skipped
func buildRegistry(def model.PipelineDefinition, logger zerolog.Logger) *pipeline.Registry {
	reg, rejected := pipeline.FromDefinition(def)
	for _, rej := range rejected {
		logger.Warn().Err(rej.Err).Int("step", rej.Index).Msg("skipping step")
	}
	return reg
}

func cliLogger() zerolog.Logger {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.Default()
	}
	return config.NewLogger(cfg)
}
