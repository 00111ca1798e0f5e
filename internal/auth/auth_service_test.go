package auth

import (
	"context"
	"database/sql"
	"testing"

	autherrors "go-workforce/internal/auth/errors"
	"go-workforce/internal/employee"
	kafkamock "go-workforce/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees map[int64]*employee.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[int64]*employee.Employee{}, nextID: 1}
}

func (f *fakeEmployeeRepo) WithTx(_ *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(_ context.Context, empl *employee.Employee) error {
	empl.ID = f.nextID
	f.nextID++
	f.employees[empl.ID] = empl
	return nil
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id int64) (*employee.Employee, error) {
	if empl, ok := f.employees[id]; ok {
		return empl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByUserName(_ context.Context, userName string) (*employee.Employee, error) {
	for _, empl := range f.employees {
		if empl.UserName == userName {
			return empl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*employee.Employee, error) {
	for _, empl := range f.employees {
		if empl.Email == email {
			return empl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindAllNames(_ context.Context) ([]employee.EmployeeName, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) FindRoleByID(_ context.Context, _ int64) (*employee.Role, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeAuthRepo struct {
	credentials    map[int64]*Authentication
	failedAttempts map[int64]int
	logins         map[int64]int
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		credentials:    map[int64]*Authentication{},
		failedAttempts: map[int64]int{},
		logins:         map[int64]int{},
	}
}

func (f *fakeAuthRepo) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeAuthRepo) Create(_ context.Context, auth *Authentication) error {
	f.credentials[auth.UserID] = auth
	return nil
}

func (f *fakeAuthRepo) FindByUserID(_ context.Context, userID int64) (*Authentication, error) {
	if auth, ok := f.credentials[userID]; ok {
		return auth, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) UpdatePasswordHash(_ context.Context, userID int64, hash string) error {
	f.credentials[userID].PasswordHash = hash
	return nil
}

func (f *fakeAuthRepo) RecordLogin(_ context.Context, userID int64) error {
	f.logins[userID]++
	return nil
}

func (f *fakeAuthRepo) RecordFailedAttempt(_ context.Context, userID int64) error {
	f.failedAttempts[userID]++
	return nil
}

func newTestService(t *testing.T, authRepo Repository, emplRepo employee.Repository) (Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, authRepo, emplRepo, nil), mock
}

func signupAndLoginFixture(t *testing.T) (Service, *fakeAuthRepo, *fakeEmployeeRepo) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	authRepo := newFakeAuthRepo()
	emplRepo := newFakeEmployeeRepo()
	svc, mock := newTestService(t, authRepo, emplRepo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Ada",
		LastName:  "Byron",
		Email:     "ada.byron@example.com",
		Password:  "correct horse",
	})
	require.NoError(t, err)
	return svc, authRepo, emplRepo
}

func TestSignup_DerivesUserNameAndHashesPassword(t *testing.T) {
	_, authRepo, emplRepo := signupAndLoginFixture(t)

	empl := emplRepo.employees[1]
	require.NotNil(t, empl)
	assert.Equal(t, "ada.byron", empl.UserName)

	auth := authRepo.credentials[1]
	require.NotNil(t, auth)
	assert.NotEqual(t, "correct horse", auth.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(auth.PasswordHash), []byte("correct horse")))
	assert.Len(t, auth.Salt, 32)
}

func TestLogin_Success(t *testing.T) {
	svc, authRepo, _ := signupAndLoginFixture(t)

	result, err := svc.Login(context.Background(), "ada.byron", "correct horse")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, int64(1), result.TotalEmployees)
	assert.Equal(t, 1, authRepo.logins[1])

	token, err := jwt.Parse(result.Token, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["user_id"])
	assert.Equal(t, "employee", claims["role"])
}

func TestLogin_WrongPasswordRecordsAttempt(t *testing.T) {
	svc, authRepo, _ := signupAndLoginFixture(t)

	_, err := svc.Login(context.Background(), "ada.byron", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Equal(t, 1, authRepo.failedAttempts[1])
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := signupAndLoginFixture(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newTestService(t, newFakeAuthRepo(), newFakeEmployeeRepo())

	err := svc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, autherrors.ErrEmailNotFound)
}

func TestRequestPasswordReset_QueuesOutboxEvent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RESET_PASSWORD_LINK", "https://portal.example.com")

	ctrl := gomock.NewController(t)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	authRepo := newFakeAuthRepo()
	emplRepo := newFakeEmployeeRepo()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, authRepo, emplRepo, outbox)
	_, err = svc.Signup(context.Background(), SignupRequest{
		Email:    "ada.byron@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ada.byron@example.com"))
}

func TestResetPassword_RoundTrip(t *testing.T) {
	svc, _, _ := signupAndLoginFixture(t)

	// A reset token is just a short-lived session token without a role.
	impl := svc.(*service)
	token, err := impl.generateToken(1, "ada.byron", "", resetTokenTTL)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "new passphrase"))

	_, err = svc.Login(context.Background(), "ada.byron", "correct horse")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	result, err := svc.Login(context.Background(), "ada.byron", "new passphrase")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newTestService(t, newFakeAuthRepo(), newFakeEmployeeRepo())

	err := svc.ResetPassword(context.Background(), "garbage", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
}
