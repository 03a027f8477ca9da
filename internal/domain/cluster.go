package domain

// ClusterInfo описывает кластер: размер, центр и текстовые рекомендации.
type ClusterInfo struct {
	Size             int                `json:"size"`
	Percentage       float64            `json:"percentage"`
	Center           []float64          `json:"center"`
	Focus            string             `json:"focus"`
	IntensityLevel   string             `json:"intensity_level"`
	RecommendedDays  int                `json:"recommended_days"`
	DominantFeatures map[string]float64 `json:"dominant_features"`
}

// ClusterPrediction — результат отнесения пользователя к кластеру.
type ClusterPrediction struct {
	Cluster     int         `json:"cluster"`
	ClusterInfo ClusterInfo `json:"cluster_info"`
}

// Cluster — кластер вместе с его индексом, используется при выдаче списка.
type Cluster struct {
	ID   int         `json:"id"`
	Info ClusterInfo `json:"info"`
}
