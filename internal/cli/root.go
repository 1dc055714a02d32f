package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "alertforge",
	Short: "alertforge - monitoring alert declaration generator",
	Long: `alertforge generates monitoring-alert declarations for the functions, API
gateways, queues and tables of a deployed service and merges them into its
compiled CloudFormation template, driven by a declarative configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCatalogCmd())
}

func initConfig() {
	viper.SetEnvPrefix("ALERTFORGE")
	viper.AutomaticEnv()

	viper.SetDefault("output", "table")
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "table" {
		return outputFormat
	}
	return viper.GetString("output")
}
