package usecase

import (
	"context"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

type PlanUC interface {
	GeneratePlan(ctx context.Context, req *GeneratePlanReq) (*domain.Plan, error)
	GetPlan(ctx context.Context, user *domain.User, planID string) (*domain.Plan, error)
	ListPlans(ctx context.Context, user *domain.User) ([]PlanSummary, error)
	SendToCoach(ctx context.Context, user *domain.User, planID string) (*domain.Plan, error)
	ReviewPlan(ctx context.Context, req *ReviewPlanReq) (*domain.Plan, error)
	DeletePlan(ctx context.Context, user *domain.User, planID string) error
	SimilarProfiles(ctx context.Context, req *SimilarProfilesReq) ([]domain.SimilarProfile, error)
}

type ClusterUC interface {
	ListClusters(ctx context.Context) []domain.Cluster
	GetCluster(ctx context.Context, id int) (*domain.Cluster, error)
	FeatureNames(ctx context.Context) []string
	PredictCluster(ctx context.Context, features domain.UserFeatures) (*domain.ClusterPrediction, error)
}
