// Command fitctl — офлайн-инструмент для работы с моделью кластеризации:
// просмотр кластеров, предсказание по записи признаков, генерация плана по анкете.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	modelDataPath   string
	clusterInfoPath string
	outputFormat    string
)

var rootCmd = &cobra.Command{
	Use:           "fitctl",
	Short:         "Inspect and query the fitness-profile cluster model",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&modelDataPath, "model-data", "data/model-data.json", "Path to model-data.json")
	rootCmd.PersistentFlags().StringVar(&clusterInfoPath, "cluster-info", "data/cluster-info.json", "Path to cluster-info.json")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "Output format: json | yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
