package converter

import (
	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// RoomToResponse converts a Room entity to RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	response := &dto.RoomResponse{
		ID:         room.ID,
		RoomNumber: room.RoomNumber,
		Status:     string(room.Status),
		Floor:      room.Floor,
		BranchID:   room.BranchID,
		CreatedAt:  room.CreatedAt,
	}

	if room.RoomType.ID != uuid.Nil {
		response.RoomType = &dto.RoomTypeResponse{
			ID:           room.RoomType.ID,
			Name:         room.RoomType.Name,
			Description:  room.RoomType.Description,
			NightlyPrice: room.RoomType.NightlyPrice,
			MaxOccupancy: room.RoomType.MaxOccupancy,
		}
	}

	return response
}

// RoomsToResponses converts a slice of Room entities to DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		resp := RoomToResponse(&room)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
