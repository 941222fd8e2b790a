// Package agenda is the appointments management surface: role-scoped
// listing and the lifecycle transitions staff perform after booking.
package agenda

import (
	"errors"
	"fmt"
	"sort"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
)

// ErrForbidden is returned when the caller's role does not permit the
// requested appointment.
var ErrForbidden = errors.New("caller may not act on this appointment")

// AgendaService lists and transitions appointments.
type AgendaService interface {
	// ListForCaller scopes the appointment book to the caller: clients see
	// their own, barbers their column, managers their location, owners and
	// admins the chain.
	ListForCaller(caller *models.Profile) ([]models.Appointment, error)
	Cancel(caller *models.Profile, appointmentID string) (*models.Appointment, error)
	Complete(caller *models.Profile, appointmentID string) (*models.Appointment, error)
}

// DefaultAgendaService implements AgendaService.
type DefaultAgendaService struct {
	Appointments appointmentRepo.AppointmentRepository
}

// ListForCaller scopes the appointment book to the caller's role.
func (s *DefaultAgendaService) ListForCaller(caller *models.Profile) ([]models.Appointment, error) {
	if caller == nil {
		return nil, ErrForbidden
	}
	all, err := s.Appointments.GetAll()
	if err != nil {
		return nil, err
	}

	var scoped []models.Appointment
	for _, apt := range all {
		switch caller.Role {
		case models.RoleClient:
			if apt.ClientID == caller.ID {
				scoped = append(scoped, apt)
			}
		case models.RoleBarber:
			if apt.BarberID == caller.ID {
				scoped = append(scoped, apt)
			}
		case models.RoleManager:
			if caller.LocationID == "" || apt.LocationID == caller.LocationID {
				scoped = append(scoped, apt)
			}
		case models.RoleOwner, models.RoleAdmin:
			scoped = append(scoped, apt)
		}
	}
	sort.Slice(scoped, func(i, j int) bool {
		return scoped[i].StartAt.Before(scoped[j].StartAt)
	})
	return scoped, nil
}

// Cancel moves a pending appointment to cancelled. Clients may cancel their
// own; staff may cancel anything in their scope.
func (s *DefaultAgendaService) Cancel(caller *models.Profile, appointmentID string) (*models.Appointment, error) {
	apt, err := s.authorize(caller, appointmentID)
	if err != nil {
		return nil, err
	}
	if apt.Status != models.AppointmentPending {
		return nil, fmt.Errorf("only pending appointments can be cancelled")
	}
	return s.Appointments.UpdateFields(apt.ID, map[string]interface{}{
		"status": models.AppointmentCancelled,
	})
}

// Complete marks a pending appointment done. Staff only.
func (s *DefaultAgendaService) Complete(caller *models.Profile, appointmentID string) (*models.Appointment, error) {
	if caller == nil || !caller.IsStaff() {
		return nil, ErrForbidden
	}
	apt, err := s.authorize(caller, appointmentID)
	if err != nil {
		return nil, err
	}
	if apt.Status != models.AppointmentPending {
		return nil, fmt.Errorf("only pending appointments can be completed")
	}
	return s.Appointments.UpdateFields(apt.ID, map[string]interface{}{
		"status": models.AppointmentCompleted,
	})
}

func (s *DefaultAgendaService) authorize(caller *models.Profile, appointmentID string) (*models.Appointment, error) {
	if caller == nil {
		return nil, ErrForbidden
	}
	apt, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case models.RoleClient:
		if apt.ClientID != caller.ID {
			return nil, ErrForbidden
		}
	case models.RoleBarber:
		if apt.BarberID != caller.ID {
			return nil, ErrForbidden
		}
	case models.RoleManager:
		if caller.LocationID != "" && apt.LocationID != caller.LocationID {
			return nil, ErrForbidden
		}
	}
	return apt, nil
}
