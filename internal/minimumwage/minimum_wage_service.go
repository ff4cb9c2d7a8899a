package minimumwage

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/events"
	"go-hris-compliance/internal/messaging/kafka"
	minimumwageerrors "go-hris-compliance/internal/minimumwage/errors"
	"go-hris-compliance/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	MinimumWageAllKey = "minimum_wages:all"

	cacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=minimum_wage_service.go -destination=mock/minimum_wage_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateMinimumWageRequest) (MinimumWageResponse, error)
	GetAll(ctx context.Context, filter ListMinimumWageFilter) ([]MinimumWageResponse, error)
	GetByID(ctx context.Context, id string) (MinimumWageResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateMinimumWageRequest) (MinimumWageResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{
		db:   db,
		repo: repo,
		rdb:  rdb,
		sf:   &singleflight.Group{},
		now:  time.Now,
	}
}

// NewServiceWithOutbox queues a MinimumWageChangedEvent in the same
// transaction as every write.
func NewServiceWithOutbox(db *sql.DB, repo Repository, rdb *redis.Client, outbox kafka.OutboxRepository) Service {
	svc := NewService(db, repo, rdb).(*service)
	svc.outbox = outbox
	return svc
}

func (s *service) Create(
	ctx context.Context,
	actorID string,
	req CreateMinimumWageRequest,
) (MinimumWageResponse, error) {
	state := strings.TrimSpace(req.State)
	if state == "" {
		return MinimumWageResponse{}, minimumwageerrors.ErrStateRequired
	}
	category := domain.SkillCategory(req.Category)
	if !category.Valid() {
		return MinimumWageResponse{}, minimumwageerrors.ErrInvalidCategory
	}
	if req.MinimumWage == nil || *req.MinimumWage < 0 {
		return MinimumWageResponse{}, minimumwageerrors.ErrInvalidMinimumWage
	}

	effectiveFrom := s.now().UTC()
	if req.EffectiveFrom != nil && strings.TrimSpace(*req.EffectiveFrom) != "" {
		parsed, err := parseDate(*req.EffectiveFrom)
		if err != nil {
			return MinimumWageResponse{}, err
		}
		effectiveFrom = parsed
	}

	var effectiveTo *time.Time
	if req.EffectiveTo != nil && strings.TrimSpace(*req.EffectiveTo) != "" {
		parsed, err := parseDate(*req.EffectiveTo)
		if err != nil {
			return MinimumWageResponse{}, err
		}
		effectiveTo = &parsed
	}
	if err := validateWindow(effectiveFrom, effectiveTo); err != nil {
		return MinimumWageResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	cfg := &MinimumWageConfiguration{
		ID:            uuid.New(),
		State:         state,
		Category:      category,
		MinimumWage:   decimal.NewFromFloat(*req.MinimumWage),
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		IsActive:      isActive,
		CreatedBy:     actorID,
		UpdatedBy:     actorID,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MinimumWageResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, cfg); err != nil {
		return MinimumWageResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChange(ctx, tx, events.MinimumWageCreated, *cfg, "", actorID); err != nil {
		return MinimumWageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MinimumWageResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*cfg), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter ListMinimumWageFilter,
) ([]MinimumWageResponse, error) {
	// Only the unfiltered list is cached.
	if !filter.IsZero() || s.rdb == nil {
		configs, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(configs), nil
	}

	cached, err := s.rdb.Get(ctx, MinimumWageAllKey).Result()
	if err == nil {
		var resp []MinimumWageResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
	}

	v, err, _ := s.sf.Do(MinimumWageAllKey, func() (any, error) {
		configs, err := s.repo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(configs)
		if jsonData, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, MinimumWageAllKey, jsonData, cacheTTL)
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]MinimumWageResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (MinimumWageResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MinimumWageResponse{}, minimumwageerrors.ErrConfigurationNotFound
	}

	cfg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return MinimumWageResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Update(
	ctx context.Context,
	actorID, id string,
	req UpdateMinimumWageRequest,
) (MinimumWageResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return MinimumWageResponse{}, minimumwageerrors.ErrConfigurationNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MinimumWageResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cfg, err := qtx.FindByID(ctx, id)
	if err != nil {
		return MinimumWageResponse{}, mapRepositoryError(err)
	}

	previousState := cfg.State
	if err := applyUpdate(cfg, req); err != nil {
		return MinimumWageResponse{}, err
	}
	cfg.UpdatedBy = actorID

	if err := qtx.Update(ctx, cfg); err != nil {
		return MinimumWageResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueChange(ctx, tx, events.MinimumWageUpdated, *cfg, previousState, actorID); err != nil {
		return MinimumWageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MinimumWageResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*cfg), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return minimumwageerrors.ErrConfigurationNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cfg, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.enqueueChange(ctx, tx, events.MinimumWageDeleted, *cfg, "", actorID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) enqueueChange(
	ctx context.Context,
	tx *sql.Tx,
	eventType string,
	cfg MinimumWageConfiguration,
	previousState string,
	actorID string,
) error {
	if s.outbox == nil {
		return nil
	}
	if previousState == cfg.State {
		previousState = ""
	}

	payload, err := json.Marshal(events.MinimumWageChangedEvent{
		EventType:       eventType,
		ConfigurationID: cfg.ID.String(),
		State:           cfg.State,
		PreviousState:   previousState,
		Category:        cfg.Category.String(),
		MinimumWage:     cfg.MinimumWage.StringFixed(2),
		ChangedBy:       actorID,
		OccurredAt:      s.now().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "minimum_wage_configuration",
		AggregateID:   cfg.ID.String(),
		EventType:     eventType,
		Topic:         events.MinimumWageChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, MinimumWageAllKey).Err(); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("failed to invalidate minimum wage cache",
			zap.String("key", MinimumWageAllKey),
			zap.Error(err),
		)
	}
}

func applyUpdate(cfg *MinimumWageConfiguration, req UpdateMinimumWageRequest) error {
	if req.State != nil {
		state := strings.TrimSpace(*req.State)
		if state == "" {
			return minimumwageerrors.ErrStateRequired
		}
		cfg.State = state
	}
	if req.Category != nil {
		category := domain.SkillCategory(*req.Category)
		if !category.Valid() {
			return minimumwageerrors.ErrInvalidCategory
		}
		cfg.Category = category
	}
	if req.MinimumWage != nil {
		if *req.MinimumWage < 0 {
			return minimumwageerrors.ErrInvalidMinimumWage
		}
		cfg.MinimumWage = decimal.NewFromFloat(*req.MinimumWage)
	}
	if req.EffectiveFrom != nil {
		parsed, err := parseDate(*req.EffectiveFrom)
		if err != nil {
			return err
		}
		cfg.EffectiveFrom = parsed
	}
	if req.EffectiveTo != nil {
		if strings.TrimSpace(*req.EffectiveTo) == "" {
			cfg.EffectiveTo = nil
		} else {
			parsed, err := parseDate(*req.EffectiveTo)
			if err != nil {
				return err
			}
			cfg.EffectiveTo = &parsed
		}
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}

	return validateWindow(cfg.EffectiveFrom, cfg.EffectiveTo)
}

func validateWindow(from time.Time, to *time.Time) error {
	if to != nil && to.Before(from) {
		return minimumwageerrors.ErrInvalidDateRange
	}
	return nil
}

// parseDate accepts RFC3339 or a bare YYYY-MM-DD and normalizes to UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, minimumwageerrors.ErrInvalidDateFormat
}

func mapToResponse(cfg MinimumWageConfiguration) MinimumWageResponse {
	resp := MinimumWageResponse{
		ID:            cfg.ID.String(),
		State:         cfg.State,
		Category:      cfg.Category.String(),
		MinimumWage:   cfg.MinimumWage.InexactFloat64(),
		EffectiveFrom: cfg.EffectiveFrom.UTC().Format(time.RFC3339),
		IsActive:      cfg.IsActive,
		CreatedBy:     cfg.CreatedBy,
		UpdatedBy:     cfg.UpdatedBy,
	}
	if cfg.EffectiveTo != nil {
		to := cfg.EffectiveTo.UTC().Format(time.RFC3339)
		resp.EffectiveTo = &to
	}
	if !cfg.CreatedAt.IsZero() {
		resp.CreatedAt = cfg.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !cfg.UpdatedAt.IsZero() {
		resp.UpdatedAt = cfg.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(configs []MinimumWageConfiguration) []MinimumWageResponse {
	res := make([]MinimumWageResponse, len(configs))
	for i, cfg := range configs {
		res[i] = mapToResponse(cfg)
	}
	return res
}
