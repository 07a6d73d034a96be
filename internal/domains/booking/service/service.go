package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"sufra/config"
	"sufra/infras/otel"
	"sufra/internal/domains/booking/model"
	"sufra/internal/domains/booking/model/dto"
	"sufra/internal/domains/booking/repository"
	calendarModel "sufra/internal/domains/calendar/model"
	notificationDto "sufra/internal/domains/notification/model/dto"
	notificationService "sufra/internal/domains/notification/service"
	"sufra/shared"
	"sufra/shared/cache"
	"sufra/shared/constant"
	gDto "sufra/shared/dto"
	"sufra/shared/failure"
	"sufra/shared/timezone"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheCalendar      = "calendar"

	emailSubjectTag = "[Iftar Planner]"
	emailDateLayout = "2 January"
)

type Booking interface {
	Confirm(ctx context.Context, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	notifier notificationService.Notification
	otel     otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, notifier notificationService.Notification, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		notifier: notifier,
		otel:     otel,
	}
}

// Confirm claims a free slot or updates an existing booking in place. The
// write is an upsert keyed by the deterministic slot id; an occupied slot
// can only be overwritten by its owning session or an admin actor. The
// check lives here, not in any client.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)
	isAdmin, _ := ctx.Value(constant.ContextKeyIsAdmin).(bool)

	if sessionID == "" {
		return res, failure.Unauthorized("missing session identity") //nolint:wrapcheck
	}

	date, dayNumber, err := s.resolveDay(req.Date)
	if err != nil {
		return res, err
	}

	kind := calendarModel.SlotKind(req.Kind)
	if kind == "" {
		kind = calendarModel.KindIftar
	}

	isDualDay := dayNumber == s.cfg.Calendar.DualDay
	if !isDualDay && kind == calendarModel.KindSuhoor {
		return res, failure.BadRequestFromString("suhoor is only available on the dual day") //nolint:wrapcheck
	}

	slotID := calendarModel.SlotID(date, kind, isDualDay)

	existing, err := s.repo.Get(ctx, shared.FilterByID(slotID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("slot_id", slotID).Msg("failed to load existing booking")

		return res, fmt.Errorf("failed to load existing booking: %w", err)
	}

	isUpdate := existing.ID != ""
	if isUpdate && !existing.OwnedBy(sessionID, isAdmin) {
		return res, failure.Forbidden("this slot is already sponsored by someone else") //nolint:wrapcheck
	}

	booking := req.ToModel(slotID, sessionID)
	if isUpdate {
		booking.CreatedAt = existing.CreatedAt
		booking.CreatedBy = existing.CreatedBy
	}

	if err = s.repo.Upsert(ctx, booking); err != nil {
		log.Error().Err(err).Str("slot_id", slotID).Msg("failed to confirm booking")

		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.invalidate(ctx)
	s.dispatch(ctx, confirmEvent(booking, isUpdate), confirmEmail(booking, existing, date, kind, isUpdate))

	res.FromModel(booking)

	return res, nil
}

// Cancel removes a booking by its slot id. The pre-deletion snapshot rides
// along on the notification since the row is gone afterwards.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)
	isAdmin, _ := ctx.Value(constant.ContextKeyIsAdmin).(bool)

	if sessionID == "" {
		return failure.Unauthorized("missing session identity") //nolint:wrapcheck
	}

	existing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("slot_id", id).Msg("failed to load booking for cancellation")

		return fmt.Errorf("failed to load booking for cancellation: %w", err)
	}

	if existing.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if !existing.OwnedBy(sessionID, isAdmin) {
		return failure.Forbidden("this slot is sponsored by someone else") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("slot_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx)
	s.dispatch(ctx, cancelEvent(existing), cancelEmail(existing))

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// resolveDay validates the date against the configured range and returns
// its 1-indexed day number.
func (s *serviceImpl) resolveDay(raw string) (time.Time, int, error) {
	date, err := time.Parse(constant.DateOnlyFormat, raw)
	if err != nil {
		return time.Time{}, 0, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
	}

	start, err := time.Parse(constant.DateOnlyFormat, s.cfg.Calendar.StartDate)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid calendar start date in configuration: %w", err)
	}

	dayNumber := int(date.Sub(start).Hours()/24) + 1
	if dayNumber < 1 || dayNumber > s.cfg.Calendar.TotalDays {
		return time.Time{}, 0, failure.BadRequestFromString("date is outside the calendar") //nolint:wrapcheck
	}

	return date, dayNumber, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()
}

// dispatch fires the notification without awaiting it. Failures are the
// notification service's problem; the mutation has already succeeded.
func (s *serviceImpl) dispatch(ctx context.Context, event notificationDto.BookingEvent, email notificationDto.EmailRequest) {
	c := context.WithoutCancel(ctx)

	go s.notifier.Notify(c, event, email)
}

func confirmEvent(booking model.Booking, isUpdate bool) notificationDto.BookingEvent {
	action := notificationDto.ActionCreated
	if isUpdate {
		action = notificationDto.ActionUpdated
	}

	return notificationDto.BookingEvent{
		Action:      action,
		SlotID:      booking.ID,
		Name:        booking.Name,
		Phone:       booking.Phone,
		FoodDetails: booking.FoodDetails,
		SessionID:   booking.SessionID,
		OccurredAt:  timezone.Now(),
	}
}

func cancelEvent(booking model.Booking) notificationDto.BookingEvent {
	return notificationDto.BookingEvent{
		Action:      notificationDto.ActionCancelled,
		SlotID:      booking.ID,
		Name:        booking.Name,
		Phone:       booking.Phone,
		FoodDetails: booking.FoodDetails,
		SessionID:   booking.SessionID,
		OccurredAt:  timezone.Now(),
	}
}

// confirmEmail builds the human-readable notification. Updates list each
// changed field as old -> new; an update that changed nothing says so
// explicitly so the recipient knows it was only re-confirmed.
func confirmEmail(booking, existing model.Booking, date time.Time, kind calendarModel.SlotKind, isUpdate bool) notificationDto.EmailRequest {
	action := notificationDto.ActionCreated
	if isUpdate {
		action = notificationDto.ActionUpdated
	}

	dateStr := date.Format(emailDateLayout)
	subject := fmt.Sprintf("%s Booking %s: %s (%s)", emailSubjectTag, action, dateStr, kind)

	changesStr := ""

	if isUpdate {
		changes := []string{}

		if existing.Name != booking.Name {
			changes = append(changes, fmt.Sprintf("- Name: %q -> %q", existing.Name, booking.Name))
		}

		if existing.Phone != booking.Phone {
			changes = append(changes, fmt.Sprintf("- Phone: %q -> %q", existing.Phone, booking.Phone))
		}

		if existing.FoodDetails != booking.FoodDetails {
			changes = append(changes, fmt.Sprintf("- Details: %q -> %q", existing.FoodDetails, booking.FoodDetails))
		}

		if len(changes) > 0 {
			changesStr = "\n\nCHANGES MADE:"
			for _, change := range changes {
				changesStr += "\n" + change
			}
		} else {
			changesStr = "\n\n(No details were changed, only confirmed)"
		}
	}

	body := fmt.Sprintf(
		"Booking Details:\n\nDate: %s\nType: %s\nName: %s\nPhone: %s\nDetails: %s%s\n\nProcessed via EEIS Planner.",
		dateStr, kind, booking.Name, booking.Phone, booking.FoodDetails, changesStr,
	)

	return notificationDto.EmailRequest{
		Subject: subject,
		Body:    body,
	}
}

// cancelEmail carries the snapshot of the deleted row for human auditing.
func cancelEmail(booking model.Booking) notificationDto.EmailRequest {
	subject := fmt.Sprintf("%s Booking %s: %s", emailSubjectTag, notificationDto.ActionCancelled, booking.ID)

	body := fmt.Sprintf(
		"The following booking has been cancelled completely.\n\nCANCELLED BOOKING DETAILS:\nName: %s\nPhone: %s\nFood: %s\n\nSlot ID: %s",
		booking.Name, booking.Phone, booking.FoodDetails, booking.ID,
	)

	return notificationDto.EmailRequest{
		Subject: subject,
		Body:    body,
	}
}
