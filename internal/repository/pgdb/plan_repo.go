package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/fitplan-backend/internal/domain"
	"github.com/DRSN-tech/fitplan-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const planColumns = `
	id::text, user_id, status, workout_plan, nutrition_plan, overview, user_data,
	cluster, cluster_info, coach_comment, coach_id, sent_by, created_at, updated_at`

// PlanRepo реализует хранилище планов поверх PostgreSQL.
type PlanRepo struct {
	pool *pgxpool.Pool
	conv converter.PlanConverter
}

func NewPlanRepo(pool *pgxpool.Pool, conv converter.PlanConverter) *PlanRepo {
	return &PlanRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет новый план. Работает как в транзакции, так и без нее.
func (p *PlanRepo) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	model, err := p.conv.ToModel(plan)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO plans (
			id, user_id, status, workout_plan, nutrition_plan, overview, user_data,
			cluster, cluster_info, coach_comment, coach_id, sent_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at;
	`

	err = tr.Conn(ctx, p.pool).QueryRow(ctx, query,
		model.ID,
		model.UserID,
		model.Status,
		model.WorkoutPlan,
		model.NutritionPlan,
		model.Overview,
		model.UserData,
		model.Cluster,
		model.ClusterInfo,
		model.CoachComment,
		model.CoachID,
		model.SentBy,
		model.CreatedAt,
	).Scan(&model.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model)
}

// GetByID возвращает план по идентификатору. Внутри транзакции строка блокируется до ее конца.
func (p *PlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrPlanNotFound)
	}

	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`
	if tr.InTx(ctx) {
		query += ` FOR UPDATE`
	}

	rows, err := tr.Conn(ctx, p.pool).Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	plans, err := p.collect(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if len(plans) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrPlanNotFound)
	}

	return &plans[0], nil
}

// ListByUser возвращает планы пользователя, новые первыми.
func (p *PlanRepo) ListByUser(ctx context.Context, userID string) ([]domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := tr.Conn(ctx, p.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	plans, err := p.collect(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return plans, nil
}

// ListByStatus возвращает планы в заданном статусе, самые давние запросы первыми.
func (p *PlanRepo) ListByStatus(ctx context.Context, status domain.PlanStatus) ([]domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE status = $1 ORDER BY COALESCE(updated_at, created_at)`

	rows, err := tr.Conn(ctx, p.pool).Query(ctx, query, string(status))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	plans, err := p.collect(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return plans, nil
}

// UpdateStatus сохраняет статус плана и поля согласования с тренером.
func (p *PlanRepo) UpdateStatus(ctx context.Context, plan *domain.Plan) error {
	query := `
		UPDATE plans
		SET status = $2, coach_comment = $3, coach_id = $4, sent_by = $5, updated_at = COALESCE($6, NOW())
		WHERE id = $1
	`

	tag, err := tr.Conn(ctx, p.pool).Exec(ctx, query,
		plan.ID,
		string(plan.Status),
		plan.CoachComment,
		plan.CoachID,
		plan.SentBy,
		plan.UpdatedAt,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrPlanNotFound)
	}

	return nil
}

func (p *PlanRepo) Delete(ctx context.Context, id string) error {
	tag, err := tr.Conn(ctx, p.pool).Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrPlanNotFound)
	}

	return nil
}

func (p *PlanRepo) collect(rows pgx.Rows) ([]domain.Plan, error) {
	defer rows.Close()

	result := make([]domain.Plan, 0)
	for rows.Next() {
		var model converter.PlanModel
		if err := rows.Scan(
			&model.ID, &model.UserID, &model.Status, &model.WorkoutPlan, &model.NutritionPlan,
			&model.Overview, &model.UserData, &model.Cluster, &model.ClusterInfo, &model.CoachComment,
			&model.CoachID, &model.SentBy, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, err
		}

		plan, err := p.conv.ToEntity(&model)
		if err != nil {
			return nil, err
		}
		result = append(result, *plan)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result, nil
		}
		return nil, err
	}

	return result, nil
}
