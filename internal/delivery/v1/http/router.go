package http

import (
	"net/http"

	_ "github.com/DRSN-tech/fitplan-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init регистрирует маршруты. metrics может быть nil.
func (r *Router) Init(planUC usecase.PlanUC, clusterUC usecase.ClusterUC, metrics http.Handler, swaggerURL string) {
	r.router.Use(middleware.RealIP, middleware.Recoverer)

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		r.router.Handle("/metrics", metrics)
	}
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerPlanRoutes(v1, NewPlanHandler(planUC, r.logger))
		registerClusterRoutes(v1, NewClusterHandler(clusterUC, r.logger))
	})
}

func registerPlanRoutes(router chi.Router, h *PlanHandler) {
	router.Route("/plans", func(pr chi.Router) {
		pr.Use(identity)
		pr.Post("/", h.generatePlan)
		pr.Get("/", h.listPlans)
		pr.Route("/{planID}", func(plan chi.Router) {
			plan.Get("/", h.getPlan)
			plan.Delete("/", h.deletePlan)
			plan.Post("/send-to-coach", h.sendToCoach)
			plan.Post("/review", h.reviewPlan)
			plan.Get("/similar", h.similarProfiles)
		})
	})
}

func registerClusterRoutes(router chi.Router, h *ClusterHandler) {
	router.Route("/clusters", func(cr chi.Router) {
		cr.Get("/", h.listClusters)
		cr.Get("/features", h.featureNames)
		cr.Post("/predict", h.predictCluster)
		cr.Get("/{clusterID}", h.getCluster)
	})
}
