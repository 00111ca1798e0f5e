package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/employee"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	passwordHashCost = 12
	sessionTTL       = time.Hour
	resetTokenTTL    = 15 * time.Minute
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (int64, error)
	Login(ctx context.Context, userName, password string) (LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Verify(ctx context.Context, userID int64) (*employee.Employee, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

// Signup creates the employee record and its credential row in one
// transaction. The user name is derived from the email local part.
func (s *service) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return 0, err
	}

	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return 0, err
	}
	salt := hex.EncodeToString(saltBytes)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("signup begin tx failed", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	empl := &employee.Employee{
		UserName:       strings.SplitN(req.Email, "@", 2)[0],
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Position:       req.Position,
		CellPhone:      req.CellPhone,
		HomePhone:      req.HomePhone,
		Email:          req.Email,
		EmployeeNumber: req.EmployeeNumber,
		RoleID:         req.RoleID,
		ManagerID:      req.ManagerID,
		IsContractor:   req.IsContractor,
		IsActive:       req.IsActive,
		AllowOvertime:  req.AllowOvertime,
	}

	emplRepo := s.employeeRepo.WithTx(tx)
	if err := emplRepo.Create(ctx, empl); err != nil {
		s.logger.Error("signup create employee failed", zap.Error(err))
		return 0, mapSignupError(err)
	}

	authRepo := s.repo.WithTx(tx)
	if err := authRepo.Create(ctx, &Authentication{
		UserID:       empl.ID,
		PasswordHash: string(hashed),
		Salt:         salt,
		LastLogin:    time.Now(),
	}); err != nil {
		s.logger.Error("signup create credentials failed", zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("signup commit failed", zap.Error(err))
		return 0, err
	}

	s.logger.Info("signup success", zap.Int64("employee_id", empl.ID))
	return empl.ID, nil
}

func (s *service) Login(ctx context.Context, userName, password string) (LoginResult, error) {
	user, err := s.employeeRepo.FindByUserName(ctx, userName)
	if err != nil {
		s.logger.Warn("login unknown user name", zap.String("user_name", userName))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	auth, err := s.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("login credentials missing", zap.Int64("employee_id", user.ID))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte(password)); err != nil {
		if err := s.repo.RecordFailedAttempt(ctx, user.ID); err != nil {
			s.logger.Error("record failed attempt failed", zap.Error(err))
		}
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	if err := s.repo.RecordLogin(ctx, user.ID); err != nil {
		s.logger.Error("record login failed", zap.Error(err))
	}

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		s.logger.Error("login count employees failed", zap.Error(err))
		return LoginResult{}, err
	}

	var managerName *string
	if user.ManagerID != nil {
		if manager, err := s.employeeRepo.FindByID(ctx, *user.ManagerID); err == nil {
			name := manager.FirstName + " " + manager.LastName
			managerName = &name
		}
	}

	role := resolveRoleName(user)

	expiresAt := time.Now().Add(sessionTTL)
	token, err := s.generateToken(user.ID, user.UserName, role, sessionTTL)
	if err != nil {
		return LoginResult{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.Int64("employee_id", user.ID),
		zap.String("role", role),
	)

	return LoginResult{
		Token:          token,
		User:           LoginUser{Employee: *user, ManagerName: managerName},
		ExpiresAt:      expiresAt.UnixMilli(),
		TotalEmployees: totalEmployees,
	}, nil
}

// RequestPasswordReset queues a reset email through the outbox; the mailer
// consumes the event out of process.
func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrEmailNotFound
		}
		return err
	}

	resetToken, err := s.generateToken(user.ID, user.UserName, "", resetTokenTTL)
	if err != nil {
		return autherrors.ErrTokenGenerationFailed
	}
	resetLink := fmt.Sprintf("%s/employee-portal/reset-password/%s",
		os.Getenv("RESET_PASSWORD_LINK"), resetToken)

	event := events.PasswordResetRequestedEvent{
		EventType:  "auth.password_reset_requested",
		EmployeeID: user.ID,
		Email:      user.Email,
		ResetLink:  resetLink,
		OccurredAt: time.Now().UTC(),
	}

	if s.outbox == nil {
		s.logger.Warn("outbox unavailable, password reset not queued", zap.Int64("employee_id", user.ID))
		return nil
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		ctx, "employee", strconv.FormatInt(user.ID, 10),
		event.EventType, events.PasswordResetTopic, event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.Create(ctx, outboxEvent); err != nil {
		s.logger.Error("queue password reset failed", zap.Int64("employee_id", user.ID), zap.Error(err))
		return err
	}

	s.logger.Info("password reset queued", zap.Int64("employee_id", user.ID))
	return nil
}

func (s *service) ResetPassword(ctx context.Context, tokenString, password string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidResetToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return autherrors.ErrInvalidResetToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return autherrors.ErrInvalidResetToken
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return autherrors.ErrInvalidResetToken
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return autherrors.ErrInvalidResetToken
	}

	if _, err := s.employeeRepo.FindByID(ctx, userID); err != nil {
		return autherrors.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, string(hashed)); err != nil {
		s.logger.Error("reset password update failed", zap.Int64("employee_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password reset", zap.Int64("employee_id", userID))
	return nil
}

func (s *service) Verify(ctx context.Context, userID int64) (*employee.Employee, error) {
	user, err := s.employeeRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}
	return user, nil
}

func (s *service) generateToken(userID int64, userName, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   strconv.FormatInt(userID, 10),
		"user_name": userName,
		"exp":       time.Now().Add(expiry).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// resolveRoleName lowercases the joined role name so it lines up with the
// enforcer's role vocabulary.
func resolveRoleName(user *employee.Employee) string {
	if user.Role == nil || user.Role.RoleName == "" {
		return "employee"
	}
	return strings.ToLower(user.Role.RoleName)
}
