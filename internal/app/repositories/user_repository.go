package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aymanebt/tptrack/internal/app/models"
	"github.com/aymanebt/tptrack/internal/pkg/apperrors"
	"github.com/aymanebt/tptrack/internal/pkg/dberrors"
)

// UserRepository handles database operations for users and their
// role-specific detail rows
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser inserts the base user row on a caller-owned transaction and
// returns its id. The service follows with CreateStudentTx or
// CreateInstructorTx on the same transaction.
func (r *UserRepository) CreateUser(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (email, password, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// CreateStudentTx inserts the student detail row
func (r *UserRepository) CreateStudentTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, cne, group_id, date_of_birth)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, student.UserID, student.CNE, student.GroupID, student.DateOfBirth)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_cne_key") {
			return apperrors.ErrCNEAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// CreateInstructorTx inserts the instructor detail row
func (r *UserRepository) CreateInstructorTx(ctx context.Context, tx pgx.Tx, instructor *models.Instructor) error {
	query := `
		INSERT INTO instructors (user_id, matricule)
		VALUES ($1, $2)
	`

	_, err := tx.Exec(ctx, query, instructor.UserID, instructor.Matricule)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "instructors_matricule_key") {
			return apperrors.ErrIdentifierExists
		}
		return fmt.Errorf("error creating instructor: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, role, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetStudentByUserID retrieves the student detail row with its user and group
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT st.user_id, st.cne, st.group_id, st.date_of_birth,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.created_at,
		       g.id, g.name, g.track_id
		FROM students st
		JOIN users u ON u.id = st.user_id
		JOIN groups g ON g.id = st.group_id
		WHERE st.user_id = $1
	`

	var st models.Student
	var u models.User
	var g models.Group
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&st.UserID, &st.CNE, &st.GroupID, &st.DateOfBirth,
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt,
		&g.ID, &g.Name, &g.TrackID,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	st.User = &u
	st.Group = &g

	return &st, nil
}

// GetStudentByCNE retrieves the student detail row by CNE
func (r *UserRepository) GetStudentByCNE(ctx context.Context, cne string) (*models.Student, error) {
	query := `SELECT user_id FROM students WHERE cne = $1`

	var userID int64
	if err := r.db.QueryRow(ctx, query, cne).Scan(&userID); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return r.GetStudentByUserID(ctx, userID)
}

// GetInstructorByUserID retrieves the instructor detail row with its user
func (r *UserRepository) GetInstructorByUserID(ctx context.Context, userID int64) (*models.Instructor, error) {
	query := `
		SELECT i.user_id, i.matricule,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.created_at
		FROM instructors i
		JOIN users u ON u.id = i.user_id
		WHERE i.user_id = $1
	`

	var inst models.Instructor
	var u models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&inst.UserID, &inst.Matricule,
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving instructor: %w", err)
	}
	inst.User = &u

	return &inst, nil
}

// ListByRole retrieves users of one role ordered by name
func (r *UserRepository) ListByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	query := `
		SELECT id, email, first_name, last_name, role, created_at
		FROM users
		WHERE role = $1
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ListStudentsByGroup retrieves the students of one group with their user
// rows, ordered by name
func (r *UserRepository) ListStudentsByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	query := `
		SELECT st.user_id, st.cne, st.group_id, st.date_of_birth,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.created_at
		FROM students st
		JOIN users u ON u.id = st.user_id
		WHERE st.group_id = $1
		ORDER BY u.last_name, u.first_name
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var st models.Student
		var u models.User
		err := rows.Scan(
			&st.UserID, &st.CNE, &st.GroupID, &st.DateOfBirth,
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		st.User = &u
		students = append(students, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update modifies the mutable base fields of a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hash string) error {
	query := `UPDATE users SET password = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, hash)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user; detail rows cascade
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
