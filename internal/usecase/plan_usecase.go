package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
	cacheWriteTimeout   = 500 * time.Millisecond
	approveAction       = "approve"
)

// PlanUseCase реализует генерацию планов и их согласование с тренером.
type PlanUseCase struct {
	planRepo    PlanRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	profileRepo ProfileRepository // nil, если поиск похожих профилей отключен
	trManager   TxManager
	model       ClusterModel
	workouts    WorkoutPlanner
	nutrition   NutritionPlanner
	encoder     EventEncoder
	metrics     Metrics
	logger      logger.Logger
	now         func() time.Time
}

func NewPlanUC(
	planRepo PlanRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	profileRepo ProfileRepository,
	trManager TxManager,
	model ClusterModel,
	workouts WorkoutPlanner,
	nutrition NutritionPlanner,
	encoder EventEncoder,
	metrics Metrics,
	logger logger.Logger,
) *PlanUseCase {
	return &PlanUseCase{
		planRepo:    planRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		profileRepo: profileRepo,
		trManager:   trManager,
		model:       model,
		workouts:    workouts,
		nutrition:   nutrition,
		encoder:     encoder,
		metrics:     metrics,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GeneratePlan обрабатывает анкету, определяет кластер, строит планы тренировок и питания
// и сохраняет план вместе с событием plan_created в одной транзакции.
func (p *PlanUseCase) GeneratePlan(ctx context.Context, req *GeneratePlanReq) (*domain.Plan, error) {
	const op = "PlanUseCase.GeneratePlan"

	if req.User == nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	profile, err := ProcessQuestionnaire(req.Questionnaire)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	features := profile.Features()
	prediction, err := p.predict(features)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	plan := domain.NewPlan(
		uuid.NewString(),
		req.User.ID,
		*profile,
		p.workouts.Generate(profile),
		p.nutrition.Generate(profile),
		*prediction,
	)
	plan.CreatedAt = p.now()

	err = p.trManager.Do(ctx, func(ctx context.Context) error {
		created, err := p.planRepo.Create(ctx, plan)
		if err != nil {
			return err
		}
		plan = created

		return p.publish(ctx, PlanCreated, plan)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	p.metrics.IncPlanEvent(PlanCreated)

	p.cachePlanAsync(plan)
	p.indexProfile(ctx, plan, features)

	return plan, nil
}

// GetPlan возвращает план: сначала из кэша, затем из БД.
// Клиент видит только свои планы, тренер — любые.
func (p *PlanUseCase) GetPlan(ctx context.Context, user *domain.User, planID string) (*domain.Plan, error) {
	const op = "PlanUseCase.GetPlan"

	if user == nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	plan, err := p.loadPlan(ctx, planID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !user.IsCoach() && plan.UserID != user.ID {
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	return plan, nil
}

// ListPlans — для клиента его планы (новые первыми), для тренера планы на проверке.
func (p *PlanUseCase) ListPlans(ctx context.Context, user *domain.User) ([]PlanSummary, error) {
	const op = "PlanUseCase.ListPlans"

	if user == nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	var (
		plans []domain.Plan
		err   error
	)
	if user.IsCoach() {
		plans, err = p.planRepo.ListByStatus(ctx, domain.PlanStatusRequested)
	} else {
		plans, err = p.planRepo.ListByUser(ctx, user.ID)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]PlanSummary, 0, len(plans))
	for _, plan := range plans {
		result = append(result, PlanSummary{
			Plan:        plan,
			FitnessGoal: domain.FitnessGoal(plan.UserData.ExerciseType),
		})
	}

	return result, nil
}

// SendToCoach отправляет план тренеру на проверку. Доступно только владельцу.
func (p *PlanUseCase) SendToCoach(ctx context.Context, user *domain.User, planID string) (*domain.Plan, error) {
	const op = "PlanUseCase.SendToCoach"

	if user == nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	var plan *domain.Plan
	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		plan, err = p.planRepo.GetByID(ctx, planID)
		if err != nil {
			return err
		}

		if plan.UserID != user.ID {
			return e.ErrForbidden
		}
		if plan.Status == domain.PlanStatusRequested || plan.Status == domain.PlanStatusApproved {
			return fmt.Errorf("%w: cannot send plan in status %q", e.ErrInvalidPlanStatus, plan.Status)
		}

		now := p.now()
		plan.Status = domain.PlanStatusRequested
		plan.SentBy = &user.ID
		plan.UpdatedAt = &now

		if err := p.planRepo.UpdateStatus(ctx, plan); err != nil {
			return err
		}

		return p.publish(ctx, PlanRequested, plan)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	p.metrics.IncPlanEvent(PlanRequested)

	p.invalidate(ctx, plan.ID)

	return plan, nil
}

// ReviewPlan фиксирует решение тренера: approve — одобрен, любое другое действие — отклонен.
func (p *PlanUseCase) ReviewPlan(ctx context.Context, req *ReviewPlanReq) (*domain.Plan, error) {
	const op = "PlanUseCase.ReviewPlan"

	if req.User == nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}
	if !req.User.IsCoach() {
		return nil, e.Wrap(op, e.ErrForbidden)
	}
	if missing := missingReviewFields(req); len(missing) > 0 {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrMissingFields, missing))
	}

	status := domain.PlanStatusRejected
	if req.Action == approveAction {
		status = domain.PlanStatusApproved
	}

	var plan *domain.Plan
	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		plan, err = p.planRepo.GetByID(ctx, req.PlanID)
		if err != nil {
			return err
		}

		if plan.Status != domain.PlanStatusRequested {
			return fmt.Errorf("%w: plan is %q, expected %q", e.ErrInvalidPlanStatus, plan.Status, domain.PlanStatusRequested)
		}

		now := p.now()
		plan.Status = status
		plan.CoachComment = req.Comment
		plan.CoachID = &req.User.ID
		plan.UpdatedAt = &now

		if err := p.planRepo.UpdateStatus(ctx, plan); err != nil {
			return err
		}

		return p.publish(ctx, PlanReviewed, plan)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	p.metrics.IncPlanEvent(PlanReviewed)

	p.invalidate(ctx, plan.ID)

	return plan, nil
}

// DeletePlan удаляет план. Доступно только клиенту-владельцу.
func (p *PlanUseCase) DeletePlan(ctx context.Context, user *domain.User, planID string) error {
	const op = "PlanUseCase.DeletePlan"

	if user == nil {
		return e.Wrap(op, e.ErrUnauthorized)
	}
	if user.IsCoach() {
		return e.Wrap(op, e.ErrForbidden)
	}

	err := p.trManager.Do(ctx, func(ctx context.Context) error {
		plan, err := p.planRepo.GetByID(ctx, planID)
		if err != nil {
			return err
		}

		if plan.UserID != user.ID {
			return e.ErrForbidden
		}

		if err := p.planRepo.Delete(ctx, plan.ID); err != nil {
			return err
		}

		return p.publish(ctx, PlanDeleted, plan)
	})
	if err != nil {
		return e.Wrap(op, err)
	}
	p.metrics.IncPlanEvent(PlanDeleted)

	p.invalidate(ctx, planID)
	if p.profileRepo != nil {
		if err := p.profileRepo.Delete(ctx, planID); err != nil {
			p.logger.Warnf("Failed to delete profile vector: %v", e.Wrap(op, err))
		}
	}

	return nil
}

// SimilarProfiles ищет планы пользователей с близкими стандартизированными признаками.
func (p *PlanUseCase) SimilarProfiles(ctx context.Context, req *SimilarProfilesReq) ([]domain.SimilarProfile, error) {
	const op = "PlanUseCase.SimilarProfiles"

	plan, err := p.GetPlan(ctx, req.User, req.PlanID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if p.profileRepo == nil {
		return []domain.SimilarProfile{}, nil
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	limit = min(limit, maxSimilarLimit)

	vector, err := p.model.Standardize(plan.UserData.Features())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	similar, err := p.profileRepo.SearchSimilar(ctx, toFloat32(vector), limit, plan.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return similar, nil
}

// predict вызывает модель и пишет метрики предсказания.
func (p *PlanUseCase) predict(features domain.UserFeatures) (*domain.ClusterPrediction, error) {
	start := time.Now()
	prediction, err := p.model.PredictCluster(features)

	cluster := -1
	if prediction != nil {
		cluster = prediction.Cluster
	}
	p.metrics.ObservePrediction(cluster, err, time.Since(start))

	return prediction, err
}

// publish кладет событие в outbox в текущей транзакции.
func (p *PlanUseCase) publish(ctx context.Context, eventType OutboxEventType, plan *domain.Plan) error {
	event := NewPlanEvent(uuid.NewString(), eventType, plan, p.now())

	payload, err := p.encoder.EncodePlanEvent(event)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(event, payload))
	return err
}

func (p *PlanUseCase) loadPlan(ctx context.Context, planID string) (*domain.Plan, error) {
	cached, err := p.cacheRepo.GetPlan(ctx, planID)
	if err != nil {
		p.logger.Warnf("Plan cache lookup failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	p.cachePlanAsync(plan)

	return plan, nil
}

// cachePlanAsync кэширует план в фоне, не задерживая ответ.
func (p *PlanUseCase) cachePlanAsync(plan *domain.Plan) {
	snapshot := *plan
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
		defer cancel()

		if err := p.cacheRepo.SetPlan(bgCtx, &snapshot); err != nil {
			p.logger.Warnf("Failed to cache plan in background: %v", err)
		}
	}()
}

func (p *PlanUseCase) invalidate(ctx context.Context, planID string) {
	if err := p.cacheRepo.DeletePlan(ctx, planID); err != nil {
		p.logger.Warnf("Failed to delete plan from cache: %v", err)
	}
}

// indexProfile сохраняет стандартизированный вектор признаков плана. Ошибки не прерывают генерацию.
func (p *PlanUseCase) indexProfile(ctx context.Context, plan *domain.Plan, features domain.UserFeatures) {
	if p.profileRepo == nil {
		return
	}

	vector, err := p.model.Standardize(features)
	if err != nil {
		p.logger.Warnf("Failed to standardize profile for plan %s: %v", plan.ID, err)
		return
	}

	point := domain.NewProfilePoint(plan.ID, plan.UserID, plan.Cluster, toFloat32(vector))
	if err := p.profileRepo.Upsert(ctx, point); err != nil {
		p.logger.Warnf("Failed to index profile for plan %s: %v", plan.ID, err)
	}
}

func missingReviewFields(req *ReviewPlanReq) []string {
	var missing []string
	if req.Comment == "" {
		missing = append(missing, "coach_comment")
	}
	if req.Action == "" {
		missing = append(missing, "action")
	}
	return missing
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
