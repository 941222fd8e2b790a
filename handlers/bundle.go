package handlers

import (
	"barberbook/services/directory"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single value.
type HandlerBundle struct {
	// Dir backs the profile-resolution middleware on protected groups.
	Dir directory.DirectoryService

	// Booking wizard endpoints
	StartBookingSession    gin.HandlerFunc
	GetBookingSession      gin.HandlerFunc
	AdvanceBookingSession  gin.HandlerFunc
	BackBookingSession     gin.HandlerFunc
	SubmitBooking          gin.HandlerFunc
	CompleteBookingPayment gin.HandlerFunc
	ResetBookingSession    gin.HandlerFunc

	// Profile and directory endpoints
	Me                gin.HandlerFunc
	RegisterProfile   gin.HandlerFunc
	UpdateMe          gin.HandlerFunc
	ListClients       gin.HandlerFunc
	ListStaff         gin.HandlerFunc
	ListBarbers       gin.HandlerFunc
	CreateStaff       gin.HandlerFunc
	DeactivateProfile gin.HandlerFunc

	// Catalog endpoints
	ListLocations  gin.HandlerFunc
	GetLocation    gin.HandlerFunc
	CreateLocation gin.HandlerFunc
	UpdateLocation gin.HandlerFunc
	DeleteLocation gin.HandlerFunc
	ListServices   gin.HandlerFunc
	GetService     gin.HandlerFunc
	CreateService  gin.HandlerFunc
	UpdateService  gin.HandlerFunc
	DeleteService  gin.HandlerFunc
	SeedCatalog    gin.HandlerFunc

	// Appointment book endpoints
	ListAppointments    gin.HandlerFunc
	CancelAppointment   gin.HandlerFunc
	CompleteAppointment gin.HandlerFunc

	// Payment endpoints
	StripeWebhook gin.HandlerFunc
	PaymentConfig gin.HandlerFunc

	// Media endpoints
	UploadMedia gin.HandlerFunc
	DeleteMedia gin.HandlerFunc

	// Admin auth
	AdminLogin gin.HandlerFunc
}

// NewHandlerBundle wires the per-surface handlers into the flat bundle the
// router consumes.
func NewHandlerBundle(
	booking *BookingHandler,
	dir *DirectoryHandler,
	cat *CatalogHandler,
	ag *AgendaHandler,
	pay *PaymentHandler,
	st *StorageHandler,
) *HandlerBundle {
	return &HandlerBundle{
		Dir: dir.Dir,

		StartBookingSession:    booking.StartSessionHandler,
		GetBookingSession:      booking.GetSessionHandler,
		AdvanceBookingSession:  booking.AdvanceHandler,
		BackBookingSession:     booking.BackHandler,
		SubmitBooking:          booking.SubmitBookingHandler,
		CompleteBookingPayment: booking.CompletePaymentHandler,
		ResetBookingSession:    booking.ResetHandler,

		Me:                dir.MeHandler,
		RegisterProfile:   dir.RegisterHandler,
		UpdateMe:          dir.UpdateMeHandler,
		ListClients:       dir.ListClientsHandler,
		ListStaff:         dir.ListStaffHandler,
		ListBarbers:       dir.ListBarbersHandler,
		CreateStaff:       dir.CreateStaffHandler,
		DeactivateProfile: dir.DeactivateProfileHandler,

		ListLocations:  cat.ListLocationsHandler,
		GetLocation:    cat.GetLocationHandler,
		CreateLocation: cat.CreateLocationHandler,
		UpdateLocation: cat.UpdateLocationHandler,
		DeleteLocation: cat.DeleteLocationHandler,
		ListServices:   cat.ListServicesHandler,
		GetService:     cat.GetServiceHandler,
		CreateService:  cat.CreateServiceHandler,
		UpdateService:  cat.UpdateServiceHandler,
		DeleteService:  cat.DeleteServiceHandler,
		SeedCatalog:    cat.SeedCatalogHandler,

		ListAppointments:    ag.ListAppointmentsHandler,
		CancelAppointment:   ag.CancelAppointmentHandler,
		CompleteAppointment: ag.CompleteAppointmentHandler,

		StripeWebhook: pay.StripeWebhookHandler,
		PaymentConfig: pay.PaymentConfigHandler,

		UploadMedia: st.UploadMediaHandler,
		DeleteMedia: st.DeleteMediaHandler,

		AdminLogin: AdminLoginHandler,
	}
}
