package converter

import (
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
)

// PlanRedisModel — представление плана в кэше.
type PlanRedisModel struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	Status        string               `json:"status"`
	WorkoutPlan   domain.WorkoutPlan   `json:"workout_plan"`
	NutritionPlan domain.NutritionPlan `json:"nutrition_plan"`
	Overview      domain.PlanOverview  `json:"overview"`
	UserData      domain.Profile       `json:"user_data"`
	Cluster       int                  `json:"cluster"`
	ClusterInfo   domain.ClusterInfo   `json:"cluster_info"`
	CoachComment  string               `json:"coach_comment"`
	CoachID       *string              `json:"coach_id,omitempty"`
	SentBy        *string              `json:"sent_by,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     *time.Time           `json:"updated_at,omitempty"`
}
