package http

import (
	"net/http"

	"go-hotel-booking/internal/delivery/http/handler"
	"go-hotel-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	roomHandler         *handler.RoomHandler
	bookingHandler      *handler.BookingHandler
	paymentHandler      *handler.PaymentHandler
	staffBookingHandler *handler.StaffBookingHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	roomHandler *handler.RoomHandler,
	bookingHandler *handler.BookingHandler,
	paymentHandler *handler.PaymentHandler,
	staffBookingHandler *handler.StaffBookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		roomHandler:         roomHandler,
		bookingHandler:      bookingHandler,
		paymentHandler:      paymentHandler,
		staffBookingHandler: staffBookingHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Room browsing (public)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.HandleFunc("", r.roomHandler.GetRooms).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}/availability", r.roomHandler.CheckAvailability).Methods(http.MethodGet)

	// Booking routes (protected - any authenticated user)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.authMiddleware.Authenticate)
	bookings.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	bookings.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/payments", r.paymentHandler.RecordPayment).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/payments", r.paymentHandler.ListPayments).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/services", r.bookingHandler.AddServiceCharge).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/services/{chargeId}", r.bookingHandler.RemoveServiceCharge).Methods(http.MethodDelete)

	// Staff routes (protected - staff and admin)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/bookings/{id}/confirm", r.staffBookingHandler.ConfirmBooking).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/check-in", r.staffBookingHandler.CheckInBooking).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/check-out", r.staffBookingHandler.CheckOutBooking).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/no-show", r.staffBookingHandler.MarkNoShow).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/recompute-totals", r.paymentHandler.RecomputeTotals).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{id}/audit", r.staffBookingHandler.GetAuditTrail).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/bookings/{id}/cancel", r.staffBookingHandler.CancelBooking).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
