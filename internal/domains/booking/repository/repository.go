package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"sufra/infras/otel"
	"sufra/infras/postgres"
	"sufra/internal/domains/booking/model"
	"sufra/shared/constant"
	gDto "sufra/shared/dto"
	"sufra/shared/logger"
	gRepo "sufra/shared/repository"
)

type Booking interface {
	Upsert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the booking row keyed by its deterministic slot id. A second
// confirm on the same slot overwrites every mutable column in place,
// including the owning session, so the last confirming actor owns the row.
func (repo *repositoryImpl) Upsert(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	if repo.degraded() {
		return nil
	}

	placeholders := make([]string, len(repo.InsertColumns))
	assignments := []string{}

	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col

		if col == model.FieldID || col == constant.FieldCreatedAt || col == constant.FieldCreatedBy {
			continue
		}

		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldID,
		strings.Join(assignments, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error) {
	if repo.degraded() {
		return model.Booking{}, nil
	}

	return repo.Repository.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error) {
	if repo.degraded() {
		return []model.Booking{}, nil
	}

	return repo.Repository.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	if repo.degraded() {
		return 0, nil
	}

	return repo.Repository.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	if repo.degraded() {
		return nil
	}

	return repo.Repository.Delete(ctx, filter) //nolint:wrapcheck
}

// degraded reports whether the store is unreachable. Per the product's
// behavior the calendar keeps working with every slot free and writes
// silently do nothing.
func (repo *repositoryImpl) degraded() bool {
	if repo.db.Available() {
		return false
	}

	log.Warn().Str("entity", model.EntityName).Msg("booking store unavailable, running degraded")

	return true
}
