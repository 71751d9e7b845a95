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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID uint, req *dto.UpdatePatientRequest) error
	DeletePatient(ctx context.Context, patientID uint) error
	SaveProfile(ctx context.Context, req *dto.SavePatientProfileRequest) (*dto.PatientResponse, bool, error)
}

type patientUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	loginRepo     repository.LoginRepository
	patientRepo   repository.PatientRepository
	auditRecorder service.AuditRecorder
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loginRepo repository.LoginRepository,
	patientRepo repository.PatientRepository,
	auditRecorder service.AuditRecorder,
) PatientUsecase {
	return &patientUsecase{
		db:            db,
		log:           log,
		loginRepo:     loginRepo,
		patientRepo:   patientRepo,
		auditRecorder: auditRecorder,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient := &entity.Patient{
		LoginID:    req.LoginID,
		Name:       req.Name,
		Email:      req.Email,
		Age:        req.Age,
		Gender:     req.Gender,
		Number:     req.Number,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}
	if req.Dob != "" {
		dob, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.Dob = dob
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		if isForeignKeyError(err, "login") {
			return nil, ErrLoginNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, db, entity.AuditActionPatientCreate, patient)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)

	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uint, req *dto.UpdatePatientRequest) error {
	db := u.db.WithContext(ctx)

	patient := &entity.Patient{
		Name:       req.Name,
		Email:      req.Email,
		Age:        req.Age,
		Gender:     req.Gender,
		Number:     req.Number,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}
	if req.Dob != "" {
		dob, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return ErrInvalidDateFormat
		}
		patient.Dob = dob
	}

	affectedRows, err := u.patientRepo.UpdateByID(db, patientID, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	patient.PatientID = patientID
	u.recordAudit(ctx, db, entity.AuditActionPatientUpdate, patient)

	return nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uint) error {
	db := u.db.WithContext(ctx)

	affectedRows, err := u.patientRepo.Delete(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrPatientNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditRecorder.Record(ctx, db, actorID, entity.AuditActionPatientDelete, "patient", fmt.Sprint(patientID), nil); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}

	return nil
}

// SaveProfile is the patient counterpart of the doctor profile-save flow:
// login lookup by email, existence check by login_id, then update or insert.
// Same caveat: the steps are not wrapped in a transaction.
func (u *patientUsecase) SaveProfile(ctx context.Context, req *dto.SavePatientProfileRequest) (*dto.PatientResponse, bool, error) {
	db := u.db.WithContext(ctx)

	var dob time.Time
	if req.Dob != "" {
		parsed, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return nil, false, ErrInvalidDateFormat
		}
		dob = parsed
	}

	login, err := u.loginRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find login by email: %+v", err)
		return nil, false, err
	}
	if login == nil {
		return nil, false, ErrUserNotFound
	}

	patient, err := u.patientRepo.FindByLoginID(db, login.LoginID)
	if err != nil {
		u.log.Warnf("Failed to find patient by login ID: %+v", err)
		return nil, false, err
	}

	if patient != nil {
		patient.Number = req.Mobile
		patient.Gender = req.Gender
		patient.Dob = dob
		patient.Address = req.Address
		patient.BloodGroup = req.BloodGroup

		if err := u.patientRepo.Update(db, patient); err != nil {
			u.log.Warnf("Failed to update patient profile: %+v", err)
			return nil, false, err
		}

		u.recordAudit(ctx, db, entity.AuditActionPatientProfile, patient)

		return converter.PatientToResponse(patient), false, nil
	}

	patient = &entity.Patient{
		LoginID:    login.LoginID,
		Number:     req.Mobile,
		Gender:     req.Gender,
		Dob:        dob,
		Address:    req.Address,
		BloodGroup: req.BloodGroup,
	}

	if err := u.patientRepo.Create(db, patient); err != nil {
		u.log.Warnf("Failed to insert patient profile: %+v", err)
		return nil, false, err
	}

	u.recordAudit(ctx, db, entity.AuditActionPatientProfile, patient)

	return converter.PatientToResponse(patient), true, nil
}

func (u *patientUsecase) recordAudit(ctx context.Context, db *gorm.DB, action string, patient *entity.Patient) {
	actorID := actorFromContext(ctx)
	details := entity.JSON{"value": converter.PatientToResponse(patient)}
	if err := u.auditRecorder.Record(ctx, db, actorID, action, "patient", fmt.Sprint(patient.PatientID), details); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}
}
