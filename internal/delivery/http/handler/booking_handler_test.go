package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hotel-booking/internal/delivery/dto"
	"go-hotel-booking/internal/usecase"
	"go-hotel-booking/pkg/validator"

	"github.com/google/uuid"
)

// fakeBookingUsecase lets each test script the usecase outcome.
type fakeBookingUsecase struct {
	createResult *dto.BookingResponse
	createErr    error
}

func (f *fakeBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return f.createResult, f.createErr
}

func (f *fakeBookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return nil, usecase.ErrBookingNotFound
}

func (f *fakeBookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	return &dto.BookingListResponse{}, nil
}

func (f *fakeBookingUsecase) AddServiceCharge(ctx context.Context, bookingID uuid.UUID, req *dto.AddServiceChargeRequest) (*dto.BookingResponse, error) {
	return nil, usecase.ErrBookingNotFound
}

func (f *fakeBookingUsecase) RemoveServiceCharge(ctx context.Context, bookingID, chargeID uuid.UUID) (*dto.BookingResponse, error) {
	return nil, usecase.ErrBookingNotFound
}

func validCreateBody() map[string]interface{} {
	roomID := uuid.New().String()
	return map[string]interface{}{
		"room_id":        roomID,
		"check_in_date":  "2026-03-10",
		"check_out_date": "2026-03-13",
		"guest_count":    2,
		"payment_option": "full",
	}
}

func postCreateBooking(t *testing.T, h *BookingHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestCreateBookingSuccess(t *testing.T) {
	fake := &fakeBookingUsecase{
		createResult: &dto.BookingResponse{Reference: "HB-20260310-A1B2C3", Status: "confirmed"},
	}
	h := NewBookingHandler(fake, validator.NewValidator())

	rec := postCreateBooking(t, h, validCreateBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["success"] != true {
		t.Errorf("expected success envelope, got %v", envelope)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := NewBookingHandler(&fakeBookingUsecase{}, validator.NewValidator())

	body := validCreateBody()
	delete(body, "check_in_date")
	body["payment_option"] = "installments"

	rec := postCreateBooking(t, h, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["kind"] != "validation_error" {
		t.Errorf("expected kind validation_error, got %v", envelope["kind"])
	}
	fields, ok := envelope["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected field error map, got %v", envelope["error"])
	}
	if _, found := fields["CheckInDate"]; !found {
		t.Errorf("expected CheckInDate error, got %v", fields)
	}
	if _, found := fields["PaymentOption"]; !found {
		t.Errorf("expected PaymentOption error, got %v", fields)
	}
}

func TestCreateBookingRoomUnavailable(t *testing.T) {
	conflicts := []dto.BookingConflict{{
		Reference:    "HB-20260310-FFEEDD",
		CheckInDate:  "2026-03-09",
		CheckOutDate: "2026-03-12",
	}}
	fake := &fakeBookingUsecase{createErr: &usecase.RoomUnavailableError{Conflicts: conflicts}}
	h := NewBookingHandler(fake, validator.NewValidator())

	rec := postCreateBooking(t, h, validCreateBody())
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec)
	if envelope["kind"] != "room_unavailable" {
		t.Errorf("expected kind room_unavailable, got %v", envelope["kind"])
	}
	details, ok := envelope["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected conflict details, got %v", envelope["error"])
	}
	list, ok := details["conflicts"].([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("expected one conflict, got %v", details["conflicts"])
	}
	first := list[0].(map[string]interface{})
	if first["reference"] != "HB-20260310-FFEEDD" {
		t.Errorf("unexpected conflict payload: %v", first)
	}
}

func TestCreateBookingOccupancyExceeded(t *testing.T) {
	fake := &fakeBookingUsecase{createErr: usecase.ErrOccupancyExceeded}
	h := NewBookingHandler(fake, validator.NewValidator())

	rec := postCreateBooking(t, h, validCreateBody())
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	if envelope["kind"] != "occupancy_exceeded" {
		t.Errorf("expected kind occupancy_exceeded, got %v", envelope["kind"])
	}
}

func TestCreateBookingInvalidBody(t *testing.T) {
	h := NewBookingHandler(&fakeBookingUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
