package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DeepGajjar31/HealthNest/internal/converter"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/http/middleware"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	"github.com/DeepGajjar31/HealthNest/internal/domain/repository"
	"github.com/DeepGajjar31/HealthNest/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrLoginNotFound  = errors.New("login not found")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) error
	DeleteDoctor(ctx context.Context, doctorID uint) error
	SaveProfile(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	loginRepo     repository.LoginRepository
	doctorRepo    repository.DoctorRepository
	auditRecorder service.AuditRecorder
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loginRepo repository.LoginRepository,
	doctorRepo repository.DoctorRepository,
	auditRecorder service.AuditRecorder,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		loginRepo:     loginRepo,
		doctorRepo:    doctorRepo,
		auditRecorder: auditRecorder,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor := &entity.Doctor{
		LoginID:        req.LoginID,
		Name:           req.Name,
		Email:          req.Email,
		Age:            req.Age,
		Gender:         req.Gender,
		Hospital:       req.Hospital,
		HospitalLoc:    req.HospitalLoc,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Fees:           req.Fees,
		Education:      req.Education,
		Number:         req.Number,
		DocPic:         req.DocPic,
	}
	if req.Dob != "" {
		dob, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		doctor.Dob = dob
	}

	if err := u.doctorRepo.Create(db, doctor); err != nil {
		if isForeignKeyError(err, "login") {
			return nil, ErrLoginNotFound
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, db, entity.AuditActionDoctorCreate, doctor)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

// UpdateDoctor overwrites the full mutable column set of the row. Whether the
// row existed is decided by the affected-row count of the UPDATE itself.
func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uint, req *dto.UpdateDoctorRequest) error {
	db := u.db.WithContext(ctx)

	doctor := &entity.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Age:            req.Age,
		Gender:         req.Gender,
		Hospital:       req.Hospital,
		HospitalLoc:    req.HospitalLoc,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Fees:           req.Fees,
		Education:      req.Education,
		Number:         req.Number,
		DocPic:         req.DocPic,
	}
	if req.Dob != "" {
		dob, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return ErrInvalidDateFormat
		}
		doctor.Dob = dob
	}

	affectedRows, err := u.doctorRepo.UpdateByID(db, doctorID, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	doctor.DoctorID = doctorID
	u.recordAudit(ctx, db, entity.AuditActionDoctorUpdate, doctor)

	return nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID uint) error {
	db := u.db.WithContext(ctx)

	affectedRows, err := u.doctorRepo.Delete(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDoctorNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditRecorder.Record(ctx, db, actorID, entity.AuditActionDoctorDelete, "doctor", fmt.Sprint(doctorID), nil); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}

	return nil
}

// SaveProfile resolves the login row by email, then either updates the
// existing doctor row for that login or inserts a new one. The second return
// value reports whether a row was created.
//
// No transaction spans the three statements: two concurrent first-time saves
// for the same login can both observe a missing row and insert twice.
func (u *doctorUsecase) SaveProfile(ctx context.Context, req *dto.SaveDoctorProfileRequest) (*dto.DoctorResponse, bool, error) {
	db := u.db.WithContext(ctx)

	var dob time.Time
	if req.Dob != "" {
		parsed, err := time.Parse("2006-01-02", req.Dob)
		if err != nil {
			return nil, false, ErrInvalidDateFormat
		}
		dob = parsed
	}

	// Step 1: resolve the login row. A missing login is a hard stop; the flow
	// never provisions one.
	login, err := u.loginRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find login by email: %+v", err)
		return nil, false, err
	}
	if login == nil {
		return nil, false, ErrUserNotFound
	}

	// Step 2: existence check by login_id.
	doctor, err := u.doctorRepo.FindByLoginID(db, login.LoginID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by login ID: %+v", err)
		return nil, false, err
	}

	// Step 3: branch on the outcome of step 2.
	if doctor != nil {
		doctor.Number = req.Mobile
		doctor.Gender = req.Gender
		doctor.Experience = req.Experience
		doctor.Education = req.Education
		doctor.Specialization = req.Specialization
		doctor.Fees = req.Fees
		doctor.Hospital = req.Hospital
		doctor.HospitalLoc = req.HospitalLoc
		doctor.Dob = dob

		if err := u.doctorRepo.Update(db, doctor); err != nil {
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return nil, false, err
		}

		u.recordAudit(ctx, db, entity.AuditActionDoctorProfileSave, doctor)

		return converter.DoctorToResponse(doctor), false, nil
	}

	doctor = &entity.Doctor{
		LoginID:        login.LoginID,
		Number:         req.Mobile,
		Gender:         req.Gender,
		Experience:     req.Experience,
		Education:      req.Education,
		Specialization: req.Specialization,
		Fees:           req.Fees,
		Hospital:       req.Hospital,
		HospitalLoc:    req.HospitalLoc,
		Dob:            dob,
	}

	if err := u.doctorRepo.Create(db, doctor); err != nil {
		u.log.Warnf("Failed to insert doctor profile: %+v", err)
		return nil, false, err
	}

	u.recordAudit(ctx, db, entity.AuditActionDoctorProfileSave, doctor)

	return converter.DoctorToResponse(doctor), true, nil
}

func (u *doctorUsecase) recordAudit(ctx context.Context, db *gorm.DB, action string, doctor *entity.Doctor) {
	actorID := actorFromContext(ctx)
	details := entity.JSON{"value": converter.DoctorToResponse(doctor)}
	if err := u.auditRecorder.Record(ctx, db, actorID, action, "doctor", fmt.Sprint(doctor.DoctorID), details); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}
}

// actorFromContext returns the acting login ID, or nil for unauthenticated
// callers.
func actorFromContext(ctx context.Context) *uint {
	if loginID, ok := middleware.GetLoginIDFromContext(ctx); ok {
		return &loginID
	}
	return nil
}
