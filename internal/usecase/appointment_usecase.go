package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DeepGajjar31/HealthNest/internal/converter"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	"github.com/DeepGajjar31/HealthNest/internal/domain/repository"
	"github.com/DeepGajjar31/HealthNest/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID uint) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uint, req *dto.UpdateAppointmentRequest) error
	DeleteAppointment(ctx context.Context, appointmentID uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditRecorder   service.AuditRecorder
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditRecorder service.AuditRecorder,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditRecorder:   auditRecorder,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentDate: date,
		TimeSlot:        req.TimeSlot,
		Status:          entity.AppointmentStatusPending,
		Reason:          req.Reason,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, db, entity.AuditActionAppointmentCreate, appointment)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID uint) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uint, req *dto.UpdateAppointmentRequest) error {
	db := u.db.WithContext(ctx)

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return ErrInvalidDateFormat
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentDate: date,
		TimeSlot:        req.TimeSlot,
		Status:          req.Status,
		Reason:          req.Reason,
	}

	affectedRows, err := u.appointmentRepo.UpdateByID(db, appointmentID, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	appointment.AppointmentID = appointmentID
	u.recordAudit(ctx, db, entity.AuditActionAppointmentUpdate, appointment)

	return nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	db := u.db.WithContext(ctx)

	affectedRows, err := u.appointmentRepo.Delete(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAppointmentNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditRecorder.Record(ctx, db, actorID, entity.AuditActionAppointmentDelete, "appointment", fmt.Sprint(appointmentID), nil); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}

	return nil
}

func (u *appointmentUsecase) recordAudit(ctx context.Context, db *gorm.DB, action string, appointment *entity.Appointment) {
	actorID := actorFromContext(ctx)
	details := entity.JSON{"value": converter.AppointmentToResponse(appointment)}
	if err := u.auditRecorder.Record(ctx, db, actorID, action, "appointment", fmt.Sprint(appointment.AppointmentID), details); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}
}
