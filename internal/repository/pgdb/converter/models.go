package converter

import "time"

// PlanModel представляет запись таблицы plans в PostgreSQL.
type PlanModel struct {
	ID            string     `db:"id"`
	UserID        string     `db:"user_id"`
	Status        string     `db:"status"`
	WorkoutPlan   []byte     `db:"workout_plan"`
	NutritionPlan []byte     `db:"nutrition_plan"`
	Overview      []byte     `db:"overview"`
	UserData      []byte     `db:"user_data"`
	Cluster       int        `db:"cluster"`
	ClusterInfo   []byte     `db:"cluster_info"`
	CoachComment  string     `db:"coach_comment"`
	CoachID       *string    `db:"coach_id"`
	SentBy        *string    `db:"sent_by"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	PlanID      string     `db:"plan_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
