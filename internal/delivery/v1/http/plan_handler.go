package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type PlanHandler struct {
	planUsecase usecase.PlanUC
	logger      logger.Logger
}

func NewPlanHandler(planUsecase usecase.PlanUC, logger logger.Logger) *PlanHandler {
	return &PlanHandler{planUsecase: planUsecase, logger: logger}
}

// generatePlan
//
//	@Summary		Генерация плана
//	@Description	Обрабатывает анкету, определяет кластер и строит 30-дневный план тренировок и питания
//	@Tags			plans
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string					true	"ID пользователя"
//	@Param			X-User-Type	header		string					true	"customer | coach"
//	@Param			request		body		QuestionnaireRequest	true	"Анкета"
//	@Success		201			{object}	PlanResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/plans [post]
func (p *PlanHandler) generatePlan(w http.ResponseWriter, r *http.Request) {
	var req QuestionnaireRequest
	if err := decodeJSON(w, r, &req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	plan, err := p.planUsecase.GeneratePlan(r.Context(), usecase.NewGeneratePlanReq(userFromCtx(r.Context()), req.toUseCase()))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newPlanResponse(plan))
}

// listPlans
//
//	@Summary		Список планов
//	@Description	Клиент получает свои планы (новые первыми), тренер — планы, ожидающие проверки
//	@Tags			plans
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"ID пользователя"
//	@Param			X-User-Type	header		string	true	"customer | coach"
//	@Success		200			{object}	PlanListResponse
//	@Router			/plans [get]
func (p *PlanHandler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := p.planUsecase.ListPlans(r.Context(), userFromCtx(r.Context()))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPlanListResponse(plans))
}

// getPlan
//
//	@Summary	План по ID
//	@Tags		plans
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"ID пользователя"
//	@Param		X-User-Type	header		string	true	"customer | coach"
//	@Param		planID		path		string	true	"ID плана"
//	@Success	200			{object}	PlanResponse
//	@Failure	403			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/plans/{planID} [get]
func (p *PlanHandler) getPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := p.planUsecase.GetPlan(r.Context(), userFromCtx(r.Context()), chi.URLParam(r, "planID"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPlanResponse(plan))
}

// sendToCoach
//
//	@Summary	Отправить план тренеру
//	@Tags		plans
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"ID пользователя"
//	@Param		X-User-Type	header		string	true	"customer | coach"
//	@Param		planID		path		string	true	"ID плана"
//	@Success	200			{object}	PlanResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/plans/{planID}/send-to-coach [post]
func (p *PlanHandler) sendToCoach(w http.ResponseWriter, r *http.Request) {
	plan, err := p.planUsecase.SendToCoach(r.Context(), userFromCtx(r.Context()), chi.URLParam(r, "planID"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPlanResponse(plan))
}

// reviewPlan
//
//	@Summary		Решение тренера
//	@Description	approve переводит план в approved, любое другое действие — в rejected
//	@Tags			plans
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"ID тренера"
//	@Param			X-User-Type	header		string			true	"coach"
//	@Param			planID		path		string			true	"ID плана"
//	@Param			request		body		ReviewRequest	true	"Решение"
//	@Success		200			{object}	PlanResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/plans/{planID}/review [post]
func (p *PlanHandler) reviewPlan(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	plan, err := p.planUsecase.ReviewPlan(r.Context(), usecase.NewReviewPlanReq(
		userFromCtx(r.Context()), chi.URLParam(r, "planID"), req.Action, req.Comment,
	))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPlanResponse(plan))
}

// deletePlan
//
//	@Summary	Удалить план
//	@Tags		plans
//	@Param		X-User-ID	header	string	true	"ID пользователя"
//	@Param		X-User-Type	header	string	true	"customer"
//	@Param		planID		path	string	true	"ID плана"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/plans/{planID} [delete]
func (p *PlanHandler) deletePlan(w http.ResponseWriter, r *http.Request) {
	if err := p.planUsecase.DeletePlan(r.Context(), userFromCtx(r.Context()), chi.URLParam(r, "planID")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// similarProfiles
//
//	@Summary	Похожие профили
//	@Tags		plans
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"ID пользователя"
//	@Param		X-User-Type	header		string	true	"customer | coach"
//	@Param		planID		path		string	true	"ID плана"
//	@Param		limit		query		int		false	"Количество (по умолчанию 5, не больше 50)"
//	@Success	200			{object}	SimilarProfilesResponse
//	@Router		/plans/{planID}/similar [get]
func (p *PlanHandler) similarProfiles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, e.Wrap("limit must be a positive integer", e.ErrStatusBadRequest))
			return
		}
		limit = n
	}

	profiles, err := p.planUsecase.SimilarProfiles(r.Context(), usecase.NewSimilarProfilesReq(
		userFromCtx(r.Context()), chi.URLParam(r, "planID"), limit,
	))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, SimilarProfilesResponse{Profiles: profiles})
}
