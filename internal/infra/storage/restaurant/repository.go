package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

// Repository репозиторий агрегата Restaurant.
// Агрегат хранится в пяти таблицах и всегда загружается и сохраняется целиком.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByID загружает ресторан со всеми днями работы
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"is_active",
		"supported_order_mode",
		"created_on",
		"created_by",
		"updated_on",
		"updated_by",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	var row restaurantRow
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&row.ID,
		&row.Name,
		&row.IsActive,
		&row.SupportedOrderMode,
		&row.CreatedOn,
		&row.CreatedBy,
		&row.UpdatedOn,
		&row.UpdatedBy,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - scan restaurant: %v", ErrScanRow, err)
	}

	administrators, err := r.loadAdministrators(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	regularPeriods, err := r.loadRegularPeriods(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	deviatingDays, err := r.loadDeviatingDays(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	deviatingPeriods, err := r.loadDeviatingPeriods(ctx, executor, id)
	if err != nil {
		return nil, err
	}

	restaurant, err := domain.RestoreRestaurant(toSnapshot(row, administrators, regularPeriods, deviatingDays, deviatingPeriods))
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - restore id=%s: %v", ErrCorruptedData, id, err)
	}

	return restaurant, nil
}

// FindByAdministrator возвращает рестораны, в которых пользователь указан администратором
func (r *Repository) FindByAdministrator(ctx context.Context, userID uuid.UUID) ([]*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("a.restaurant_id").
		From("restaurant_administrators a").
		Join("restaurants r ON r.id = a.restaurant_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("r.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByAdministrator - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByAdministrator - execute select: %v", ErrExecQuery, err)
	}

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: FindByAdministrator - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: FindByAdministrator - iterate rows: %v", ErrScanRow, err)
	}
	rows.Close()

	restaurants := make([]*domain.Restaurant, 0, len(ids))
	for _, id := range ids {
		restaurant, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// Store сохраняет агрегат целиком: upsert корневой строки и перезапись дочерних таблиц.
// Вызывающий код должен передать транзакцию через контекст, иначе запись не атомарна.
func (r *Repository) Store(ctx context.Context, restaurant *domain.Restaurant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	snapshot := restaurant.Snapshot()

	query, args, err := psqlbuilder.Insert("restaurants").
		Columns(
			"id",
			"name",
			"is_active",
			"supported_order_mode",
			"created_on",
			"created_by",
			"updated_on",
			"updated_by",
		).
		Values(
			snapshot.ID,
			snapshot.Name,
			snapshot.IsActive,
			string(snapshot.SupportedOrderMode),
			snapshot.CreatedOn,
			snapshot.CreatedBy,
			snapshot.UpdatedOn,
			snapshot.UpdatedBy,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"name = EXCLUDED.name, " +
			"is_active = EXCLUDED.is_active, " +
			"supported_order_mode = EXCLUDED.supported_order_mode, " +
			"updated_on = EXCLUDED.updated_on, " +
			"updated_by = EXCLUDED.updated_by").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Store - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Store - execute upsert: %v", ErrExecQuery, err)
	}

	// Периоды отклоняющихся дней удаляются раньше самих дней из-за внешнего ключа
	for _, table := range []string{
		"restaurant_administrators",
		"regular_opening_periods",
		"deviating_opening_periods",
		"deviating_opening_days",
	} {
		if err := r.deleteChildren(ctx, executor, table, snapshot.ID); err != nil {
			return err
		}
	}

	if err := r.insertAdministrators(ctx, executor, snapshot); err != nil {
		return err
	}
	if err := r.insertRegularPeriods(ctx, executor, snapshot); err != nil {
		return err
	}
	if err := r.insertDeviatingDays(ctx, executor, snapshot); err != nil {
		return err
	}
	return r.insertDeviatingPeriods(ctx, executor, snapshot)
}

// Remove удаляет ресторан; дочерние строки удаляются каскадно
func (r *Repository) Remove(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}

func (r *Repository) loadAdministrators(ctx context.Context, executor DBExecutor, id uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := psqlbuilder.Select("user_id").
		From("restaurant_administrators").
		Where(squirrel.Eq{"restaurant_id": id}).
		OrderBy("user_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadAdministrators - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadAdministrators - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var administrators []uuid.UUID
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: loadAdministrators - scan row: %v", ErrScanRow, err)
		}
		administrators = append(administrators, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadAdministrators - iterate rows: %v", ErrScanRow, err)
	}

	return administrators, nil
}

func (r *Repository) loadRegularPeriods(ctx context.Context, executor DBExecutor, id uuid.UUID) ([]regularPeriodRow, error) {
	query, args, err := psqlbuilder.Select("day_of_week", "start_minutes", "end_minutes").
		From("regular_opening_periods").
		Where(squirrel.Eq{"restaurant_id": id}).
		OrderBy("day_of_week", "start_minutes").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadRegularPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadRegularPeriods - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var periods []regularPeriodRow
	for rows.Next() {
		var period regularPeriodRow
		if err := rows.Scan(&period.DayOfWeek, &period.StartMinutes, &period.EndMinutes); err != nil {
			return nil, fmt.Errorf("%w: loadRegularPeriods - scan row: %v", ErrScanRow, err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadRegularPeriods - iterate rows: %v", ErrScanRow, err)
	}

	return periods, nil
}

func (r *Repository) loadDeviatingDays(ctx context.Context, executor DBExecutor, id uuid.UUID) ([]deviatingDayRow, error) {
	query, args, err := psqlbuilder.Select("date", "status").
		From("deviating_opening_days").
		Where(squirrel.Eq{"restaurant_id": id}).
		OrderBy("date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingDays - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var days []deviatingDayRow
	for rows.Next() {
		var day deviatingDayRow
		if err := rows.Scan(&day.Date, &day.Status); err != nil {
			return nil, fmt.Errorf("%w: loadDeviatingDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingDays - iterate rows: %v", ErrScanRow, err)
	}

	return days, nil
}

func (r *Repository) loadDeviatingPeriods(ctx context.Context, executor DBExecutor, id uuid.UUID) ([]deviatingPeriodRow, error) {
	query, args, err := psqlbuilder.Select("date", "start_minutes", "end_minutes").
		From("deviating_opening_periods").
		Where(squirrel.Eq{"restaurant_id": id}).
		OrderBy("date", "start_minutes").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingPeriods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingPeriods - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var periods []deviatingPeriodRow
	for rows.Next() {
		var period deviatingPeriodRow
		if err := rows.Scan(&period.Date, &period.StartMinutes, &period.EndMinutes); err != nil {
			return nil, fmt.Errorf("%w: loadDeviatingPeriods - scan row: %v", ErrScanRow, err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadDeviatingPeriods - iterate rows: %v", ErrScanRow, err)
	}

	return periods, nil
}

func (r *Repository) deleteChildren(ctx context.Context, executor DBExecutor, table string, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"restaurant_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Store - build delete %s: %v", ErrBuildQuery, table, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Store - delete %s: %v", ErrExecQuery, table, err)
	}

	return nil
}

func (r *Repository) insertAdministrators(ctx context.Context, executor DBExecutor, snapshot domain.RestaurantSnapshot) error {
	if len(snapshot.Administrators) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("restaurant_administrators").Columns("restaurant_id", "user_id")
	for _, userID := range snapshot.Administrators {
		builder = builder.Values(snapshot.ID, userID)
	}

	return r.execInsert(ctx, executor, builder, "restaurant_administrators")
}

func (r *Repository) insertRegularPeriods(ctx context.Context, executor DBExecutor, snapshot domain.RestaurantSnapshot) error {
	builder := psqlbuilder.Insert("regular_opening_periods").
		Columns("restaurant_id", "day_of_week", "start_minutes", "end_minutes")

	count := 0
	for _, day := range snapshot.RegularOpeningDays {
		for _, period := range day.OpeningPeriods {
			builder = builder.Values(snapshot.ID, day.DayOfWeek, period.StartMinutes, period.EndMinutes)
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return r.execInsert(ctx, executor, builder, "regular_opening_periods")
}

func (r *Repository) insertDeviatingDays(ctx context.Context, executor DBExecutor, snapshot domain.RestaurantSnapshot) error {
	if len(snapshot.DeviatingOpeningDays) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("deviating_opening_days").Columns("restaurant_id", "date", "status")
	for _, day := range snapshot.DeviatingOpeningDays {
		builder = builder.Values(snapshot.ID, dateValue(day.Date), string(day.Status))
	}

	return r.execInsert(ctx, executor, builder, "deviating_opening_days")
}

func (r *Repository) insertDeviatingPeriods(ctx context.Context, executor DBExecutor, snapshot domain.RestaurantSnapshot) error {
	builder := psqlbuilder.Insert("deviating_opening_periods").
		Columns("restaurant_id", "date", "start_minutes", "end_minutes")

	count := 0
	for _, day := range snapshot.DeviatingOpeningDays {
		for _, period := range day.OpeningPeriods {
			builder = builder.Values(snapshot.ID, dateValue(day.Date), period.StartMinutes, period.EndMinutes)
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return r.execInsert(ctx, executor, builder, "deviating_opening_periods")
}

func (r *Repository) execInsert(ctx context.Context, executor DBExecutor, builder squirrel.InsertBuilder, table string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Store - build insert %s: %v", ErrBuildQuery, table, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Store - insert %s: %v", ErrExecQuery, table, err)
	}

	return nil
}
