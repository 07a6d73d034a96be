package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sufra/config"
	"sufra/infras/otel"
	bookingModel "sufra/internal/domains/booking/model"
	bookingRepository "sufra/internal/domains/booking/repository"
	"sufra/internal/domains/calendar/model"
	"sufra/internal/domains/calendar/model/dto"
	"sufra/shared"
	"sufra/shared/cache"
	"sufra/shared/constant"
	gDto "sufra/shared/dto"
)

const cacheGetCalendar = "calendar:get"

type Calendar interface {
	Get(ctx context.Context) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	repo  bookingRepository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo bookingRepository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get derives the full calendar from configuration and the raw booking
// rows. The day list is always recomputed in full; nothing from a prior
// response is patched or reused beyond the cache entry itself.
func (s *serviceImpl) Get(ctx context.Context) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCalendar)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar")

		return res, nil
	}

	start, err := time.Parse(constant.DateOnlyFormat, s.cfg.Calendar.StartDate)
	if err != nil {
		return res, fmt.Errorf("invalid calendar start date in configuration: %w", err)
	}

	days := model.BuildDays(
		start,
		s.cfg.Calendar.TotalDays,
		s.cfg.Calendar.DualDay,
		model.Attendance{
			Weekday: s.cfg.Calendar.WeekdayAttendance,
			Weekend: s.cfg.Calendar.WeekendAttendance,
			DualDay: s.cfg.Calendar.DualDayAttendance,
		},
		s.hydrate(ctx),
	)

	res.FromModels(days, s.cfg.Calendar.StartDate, s.cfg.Calendar.TotalDays)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar to cache")
		}
	}()

	return res, nil
}

// hydrate loads every booking row keyed by slot id. A read failure
// degrades to an all-free calendar rather than an error response.
func (s *serviceImpl) hydrate(ctx context.Context) map[string]bookingModel.Booking {
	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Warn().Err(err).Msg("failed to hydrate bookings, serving empty calendar")

		return map[string]bookingModel.Booking{}
	}

	byID := make(map[string]bookingModel.Booking, len(bookings))
	for _, booking := range bookings {
		byID[booking.ID] = booking
	}

	return byID
}
