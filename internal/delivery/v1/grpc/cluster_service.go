package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ClusterServiceName   = "fitplan.v1.ClusterService"
	PredictClusterMethod = "/" + ClusterServiceName + "/PredictCluster"
)

// ClusterServiceServer принимает запись признаков и возвращает
// {cluster, cluster_info} в виде google.protobuf.Struct.
type ClusterServiceServer interface {
	PredictCluster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var ClusterServiceDesc = grpc.ServiceDesc{
	ServiceName: ClusterServiceName,
	HandlerType: (*ClusterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PredictCluster",
			Handler:    predictClusterHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fitplan/v1/cluster.proto",
}

func predictClusterHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClusterServiceServer).PredictCluster(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PredictClusterMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClusterServiceServer).PredictCluster(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ClusterServiceClient — клиент к ClusterService.
type ClusterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClusterServiceClient(cc grpc.ClientConnInterface) *ClusterServiceClient {
	return &ClusterServiceClient{cc: cc}
}

func (c *ClusterServiceClient) PredictCluster(ctx context.Context, features domain.UserFeatures, opts ...grpc.CallOption) (*domain.ClusterPrediction, error) {
	in, err := FeaturesToStruct(features)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, PredictClusterMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return predictionFromStruct(out)
}

type ClusterService struct {
	clusterUC usecase.ClusterUC
	logger    logger.Logger
}

func NewClusterService(clusterUC usecase.ClusterUC, logger logger.Logger) *ClusterService {
	return &ClusterService{clusterUC: clusterUC, logger: logger}
}

func (g *ClusterService) PredictCluster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.PredictCluster"

	features, err := featuresFromStruct(req)
	if err != nil {
		g.logger.Warnf("%s: %v", op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	prediction, err := g.clusterUC.PredictCluster(ctx, features)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	res, err := predictionToStruct(prediction)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return res, nil
}

func FeaturesToStruct(features domain.UserFeatures) (*structpb.Struct, error) {
	fields := make(map[string]any, domain.FeatureCount)
	for name, v := range features.Map() {
		fields[name] = v
	}
	return structpb.NewStruct(fields)
}

func featuresFromStruct(req *structpb.Struct) (domain.UserFeatures, error) {
	values := make(map[string]float64, len(req.GetFields()))
	for name, v := range req.GetFields() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return domain.UserFeatures{}, fmt.Errorf("%w: feature %q is not a number", e.ErrInvalidMeasurement, name)
		}
		values[name] = n.NumberValue
	}

	return domain.FeaturesFromMap(values)
}

func predictionToStruct(prediction *domain.ClusterPrediction) (*structpb.Struct, error) {
	data, err := json.Marshal(prediction)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	return structpb.NewStruct(fields)
}

func predictionFromStruct(s *structpb.Struct) (*domain.ClusterPrediction, error) {
	data, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var prediction domain.ClusterPrediction
	if err := json.Unmarshal(data, &prediction); err != nil {
		return nil, err
	}

	return &prediction, nil
}
