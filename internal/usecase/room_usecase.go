package usecase

import (
	"context"
	"time"

	"go-hotel-booking/internal/converter"
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/domain/repository"
	"go-hotel-booking/internal/service"
	"go-hotel-booking/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RoomUsecase interface {
	ListRooms(ctx context.Context) (*dto.RoomListResponse, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, error)
	// CheckAvailability is the browse-path lookup; it may serve a slightly
	// stale answer from cache. Booking creation always rechecks.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkInStr, checkOutStr string) (*dto.RoomAvailabilityResponse, error)
}

type roomUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	roomRepo     repository.RoomRepository
	availability *service.AvailabilityService
	cache        *service.AvailabilityCache
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	availability *service.AvailabilityService,
	cache *service.AvailabilityCache,
) RoomUsecase {
	return &roomUsecase{
		db:           db,
		log:          log,
		roomRepo:     roomRepo,
		availability: availability,
		cache:        cache,
	}
}

func (u *roomUsecase) ListRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkInStr, checkOutStr string) (*dto.RoomAvailabilityResponse, error) {
	checkIn, err := dateutil.ToDateOnly(checkInStr)
	if err != nil {
		return nil, err
	}
	checkOut, err := dateutil.ToDateOnly(checkOutStr)
	if err != nil {
		return nil, err
	}
	if _, err := dateutil.NightsBetween(checkIn, checkOut); err != nil {
		return nil, err
	}

	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", roomID, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if available, cached, ok := u.cache.Get(ctx, roomID, checkIn, checkOut); ok {
		return availabilityResponse(roomID, checkIn, checkOut, available, cachedToConflicts(cached)), nil
	}

	result, err := u.availability.Check(u.db.WithContext(ctx), roomID, checkIn, checkOut, nil)
	if err != nil {
		u.log.Warnf("Failed availability check for room %s: %+v", roomID, err)
		return nil, err
	}

	conflicts := converter.BookingsToConflicts(result.Conflicts)
	u.cache.Set(ctx, roomID, checkIn, checkOut, result.Available, conflictsToCached(conflicts))

	return availabilityResponse(roomID, checkIn, checkOut, result.Available, conflicts), nil
}

func availabilityResponse(roomID uuid.UUID, checkIn, checkOut time.Time, available bool, conflicts []dto.BookingConflict) *dto.RoomAvailabilityResponse {
	return &dto.RoomAvailabilityResponse{
		RoomID:       roomID,
		CheckInDate:  checkIn.Format(dateutil.DateFormat),
		CheckOutDate: checkOut.Format(dateutil.DateFormat),
		Available:    available,
		Conflicts:    conflicts,
	}
}

func cachedToConflicts(cached []service.CachedConflict) []dto.BookingConflict {
	conflicts := make([]dto.BookingConflict, len(cached))
	for i, c := range cached {
		conflicts[i] = dto.BookingConflict{
			Reference:    c.Reference,
			CheckInDate:  c.CheckInDate,
			CheckOutDate: c.CheckOutDate,
		}
	}
	return conflicts
}

func conflictsToCached(conflicts []dto.BookingConflict) []service.CachedConflict {
	cached := make([]service.CachedConflict, len(conflicts))
	for i, c := range conflicts {
		cached[i] = service.CachedConflict{
			Reference:    c.Reference,
			CheckInDate:  c.CheckInDate,
			CheckOutDate: c.CheckOutDate,
		}
	}
	return cached
}
