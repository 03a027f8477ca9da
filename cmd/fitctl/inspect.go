package main

import (
	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/spf13/cobra"
)

type inspectResult struct {
	NClusters    int              `json:"n_clusters"`
	FeatureNames []string         `json:"feature_names"`
	Clusters     []domain.Cluster `json:"clusters"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Validate model documents and print clusters",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(cmd.Context())
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), outputFormat, inspectResult{
			NClusters:    model.NClusters(),
			FeatureNames: model.FeatureNames(),
			Clusters:     model.Clusters(),
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
