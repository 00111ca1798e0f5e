package employee

import (
	"context"
	"testing"

	employeeerrors "go-workforce/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	Repository
	byID  map[int64]*Employee
	names []EmployeeName
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*Employee, error) {
	empl, ok := f.byID[id]
	if !ok {
		return &Employee{}, gorm.ErrRecordNotFound
	}
	return empl, nil
}

func (f *fakeRepo) FindAllNames(_ context.Context) ([]EmployeeName, error) {
	return f.names, nil
}

func TestGetByID_OwnProfile(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*Employee{
		7: {ID: 7, UserName: "jdoe", FirstName: "John", LastName: "Doe"},
	}}
	svc := NewService(repo, nil)

	empl, err := svc.GetByID(context.Background(), 7, 7)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", empl.UserName)
}

func TestGetByID_OtherProfileForbidden(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*Employee{
		7: {ID: 7},
	}}
	svc := NewService(repo, nil)

	_, err := svc.GetByID(context.Background(), 3, 7)
	assert.ErrorIs(t, err, employeeerrors.ErrNotProfileOwner)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*Employee{}}
	svc := NewService(repo, nil)

	_, err := svc.GetByID(context.Background(), 9, 9)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestGetAllNames(t *testing.T) {
	repo := &fakeRepo{names: []EmployeeName{
		{ID: 1, FirstName: "Ada", LastName: "Byron"},
		{ID: 2, FirstName: "Grace", LastName: "Hopper"},
	}}
	svc := NewService(repo, nil)

	names, err := svc.GetAllNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Ada", names[0].FirstName)
}
