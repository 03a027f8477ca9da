package domain

// ProfilePoint — стандартизированный вектор признаков плана в векторном хранилище.
type ProfilePoint struct {
	PlanID  string
	UserID  string
	Cluster int
	Vector  []float32
}

func NewProfilePoint(planID, userID string, cluster int, vector []float32) *ProfilePoint {
	return &ProfilePoint{
		PlanID:  planID,
		UserID:  userID,
		Cluster: cluster,
		Vector:  vector,
	}
}

// SimilarProfile — найденный похожий профиль.
type SimilarProfile struct {
	PlanID  string  `json:"plan_id"`
	Cluster int     `json:"cluster"`
	Score   float32 `json:"score"`
}
