package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/alertforge/internal/catalog"
	"github.com/pratik-mahalle/alertforge/internal/config"
	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
	"github.com/pratik-mahalle/alertforge/internal/pkg/logger"
	"github.com/pratik-mahalle/alertforge/internal/services"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath   string
		templatePath string
		outPath      string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate alert declarations and merge them into a template",
		Long: `Generate resolves the configured alert selectors, matches them against the
resources of the compiled CloudFormation template and merges one alert
declaration per (resource, alert) pair back into the template.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logger.New(logger.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})

			tpl, err := cloudformation.ParseFile(templatePath)
			if err != nil {
				return err
			}

			svc := services.NewGeneratorService(cfg, catalog.Default(), log)
			result := svc.Generate(tpl)

			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			if dryRun {
				return printOutput(result.Declarations)
			}

			svc.MergeIntoTemplate(tpl, result)
			target := outPath
			if target == "" {
				target = templatePath
			}
			if err := cloudformation.WriteFile(target, tpl); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Merged %d declarations into %s\n", len(result.Declarations), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "alertforge.yml", "alert configuration file")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "compiled CloudFormation template (JSON or YAML)")
	cmd.Flags().StringVar(&outPath, "out", "", "output template path (default: overwrite the input template)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the declarations without touching the template")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
