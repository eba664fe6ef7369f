package handler

import (
	"net/http"

	"go-hotel-booking/internal/usecase"
	"go-hotel-booking/pkg/dateutil"
	"go-hotel-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomUsecase.ListRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.roomUsecase.GetRoom(r.Context(), roomID)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to get room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

// CheckAvailability answers ?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD for a
// room. Advisory only; booking creation re-runs the check transactionally.
func (h *RoomHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")
	if checkIn == "" || checkOut == "" {
		response.Fail(w, http.StatusBadRequest, "validation_error", "check_in and check_out query parameters are required", nil)
		return
	}

	availability, err := h.roomUsecase.CheckAvailability(r.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch err {
		case dateutil.ErrInvalidDate:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Dates must be formatted as YYYY-MM-DD", nil)
		case dateutil.ErrInvalidRange:
			response.Fail(w, http.StatusBadRequest, "validation_error", "Check-out date must be after check-in date", nil)
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to check availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
