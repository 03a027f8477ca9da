package main

import (
	"context"
	"time"

	v1Grpc "github.com/DRSN-tech/fitplan-backend/internal/delivery/v1/grpc"
	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	featuresPath string
	grpcAddr     string
	grpcTimeout  time.Duration
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Assign a feature record to a cluster",
	Long: `Reads a JSON object with the 14 model features (name -> number) and prints
{cluster, cluster_info}. With --addr the request goes to a running service
over gRPC, otherwise the local model documents are used.`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&featuresPath, "features", "f", "-", "Feature record JSON file, - for stdin")
	predictCmd.Flags().StringVar(&grpcAddr, "addr", "", "ClusterService address (host:port)")
	predictCmd.Flags().DurationVar(&grpcTimeout, "timeout", 5*time.Second, "gRPC call timeout")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	var values map[string]float64
	if err := readInput(featuresPath, cmd.InOrStdin(), &values); err != nil {
		return err
	}

	features, err := domain.FeaturesFromMap(values)
	if err != nil {
		return err
	}

	var prediction *domain.ClusterPrediction
	if grpcAddr != "" {
		prediction, err = predictRemote(cmd.Context(), features)
	} else {
		prediction, err = predictLocal(cmd.Context(), features)
	}
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), outputFormat, prediction)
}

func predictLocal(ctx context.Context, features domain.UserFeatures) (*domain.ClusterPrediction, error) {
	model, err := loadModel(ctx)
	if err != nil {
		return nil, err
	}
	return model.PredictCluster(features)
}

func predictRemote(ctx context.Context, features domain.UserFeatures) (*domain.ClusterPrediction, error) {
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, grpcTimeout)
	defer cancel()

	return v1Grpc.NewClusterServiceClient(conn).PredictCluster(ctx, features)
}
