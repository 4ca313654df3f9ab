package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/app/models/dto"
	"github.com/aymanebt/tptrack/internal/app/repositories"
	"github.com/aymanebt/tptrack/internal/db"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/auth"
	"github.com/aymanebt/tptrack/internal/pkg/logger"
	"github.com/aymanebt/tptrack/internal/pkg/validation"
)

// UserService handles account management, performed by the direction role
type UserService struct {
	userRepo *repositories.UserRepository
	orgRepo  *repositories.OrgRepository
	pool     *pgxpool.Pool
}

// NewUserService creates a new user service
func NewUserService(repos *repositories.Repositories, pool *pgxpool.Pool) *UserService {
	return &UserService{
		userRepo: repos.UserRepository,
		orgRepo:  repos.OrgRepository,
		pool:     pool,
	}
}

// CreateUser creates an account with its role-specific detail row in one
// transaction. Students need a CNE and a group; instructors a matricule.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserDetailResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewBadRequestError("unknown role")
	}

	switch req.Role {
	case models.RoleStudent:
		if req.CNE == "" || req.GroupID == 0 {
			return nil, apperrors.NewBadRequestError("students require a CNE and a group")
		}
		if !validation.ValidCNE(req.CNE) {
			return nil, apperrors.NewBadRequestError("invalid CNE format")
		}
		if _, err := s.orgRepo.GetGroupByID(ctx, req.GroupID); err != nil {
			return nil, err
		}
	case models.RoleInstructor:
		if req.Matricule == "" {
			return nil, apperrors.NewBadRequestError("instructors require a matricule")
		}
		if !validation.ValidMatricule(req.Matricule) {
			return nil, apperrors.NewBadRequestError("invalid matricule format")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}

	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.userRepo.CreateUser(ctx, tx, user); err != nil {
			return err
		}

		switch req.Role {
		case models.RoleStudent:
			return s.userRepo.CreateStudentTx(ctx, tx, &models.Student{
				UserID:  user.ID,
				CNE:     req.CNE,
				GroupID: req.GroupID,
			})
		case models.RoleInstructor:
			return s.userRepo.CreateInstructorTx(ctx, tx, &models.Instructor{
				UserID:    user.ID,
				Matricule: req.Matricule,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(req.Role)).Msg("User created")

	return s.GetUserDetail(ctx, user.ID)
}

// GetUserDetail retrieves a user with its role-specific details
func (s *UserService) GetUserDetail(ctx context.Context, userID int64) (*dto.UserDetailResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserDetailResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.userRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.CNE = student.CNE
		resp.GroupID = student.GroupID
		if student.Group != nil {
			resp.GroupName = student.Group.Name
		}
	case models.RoleInstructor:
		instructor, err := s.userRepo.GetInstructorByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.Matricule = instructor.Matricule
	}

	return resp, nil
}

// ListByRole lists users of one role
func (s *UserService) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError("unknown role")
	}
	return s.userRepo.ListByRole(ctx, role)
}

// ListStudentsByGroup lists the students of a group with their user rows
func (s *UserService) ListStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	if _, err := s.orgRepo.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.userRepo.ListStudentsByGroup(ctx, groupID)
}

// UpdateUser modifies an account's base fields and optionally its password
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req *dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
			return nil, err
		}
	}

	return s.GetUserDetail(ctx, userID)
}

// DeleteUser removes an account and its detail rows
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info().Int64("userId", userID).Msg("User deleted")
	return nil
}
