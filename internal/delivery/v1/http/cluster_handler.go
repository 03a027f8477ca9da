package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ClusterHandler struct {
	clusterUsecase usecase.ClusterUC
	logger         logger.Logger
}

func NewClusterHandler(clusterUsecase usecase.ClusterUC, logger logger.Logger) *ClusterHandler {
	return &ClusterHandler{clusterUsecase: clusterUsecase, logger: logger}
}

// listClusters
//
//	@Summary	Список кластеров
//	@Tags		clusters
//	@Produce	json
//	@Success	200	{object}	ClusterListResponse
//	@Router		/clusters [get]
func (c *ClusterHandler) listClusters(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, ClusterListResponse{Clusters: c.clusterUsecase.ListClusters(r.Context())})
}

// getCluster
//
//	@Summary	Кластер по индексу
//	@Tags		clusters
//	@Produce	json
//	@Param		clusterID	path		int	true	"Индекс кластера"
//	@Success	200			{object}	domain.Cluster
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/clusters/{clusterID} [get]
func (c *ClusterHandler) getCluster(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "clusterID"))
	if err != nil {
		WriteError(w, e.Wrap(chi.URLParam(r, "clusterID"), e.ErrInvalidClusterID))
		return
	}

	cluster, err := c.clusterUsecase.GetCluster(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, cluster)
}

// featureNames
//
//	@Summary	Порядок признаков модели
//	@Tags		clusters
//	@Produce	json
//	@Success	200	{object}	FeatureNamesResponse
//	@Router		/clusters/features [get]
func (c *ClusterHandler) featureNames(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, FeatureNamesResponse{Features: c.clusterUsecase.FeatureNames(r.Context())})
}

// predictCluster
//
//	@Summary		Предсказание кластера
//	@Description	Принимает запись из 14 признаков (имя → значение)
//	@Tags			clusters
//	@Accept			json
//	@Produce		json
//	@Param			request	body		map[string]number	true	"Признаки"
//	@Success		200		{object}	domain.ClusterPrediction
//	@Failure		400		{object}	ErrorResponse
//	@Router			/clusters/predict [post]
func (c *ClusterHandler) predictCluster(w http.ResponseWriter, r *http.Request) {
	var values map[string]float64
	if err := decodeJSON(w, r, &values); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	features, err := domain.FeaturesFromMap(values)
	if err != nil {
		WriteError(w, err)
		return
	}

	prediction, err := c.clusterUsecase.PredictCluster(r.Context(), features)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, prediction)
}
