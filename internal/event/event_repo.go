package event

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, evt *Event) error
	Update(ctx context.Context, id int64, evt *Event) (int64, error)
	FindByMonth(ctx context.Context, formattedMonth string) ([]EventWithEmployee, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, evt *Event) error {
	return r.db.WithContext(ctx).Create(evt).Error
}

func (r *repository) Update(ctx context.Context, id int64, evt *Event) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"employee_id":      evt.EmployeeID,
			"start":            evt.Start,
			"end_date":         evt.EndDate,
			"title":            evt.Title,
			"long_description": evt.LongDescription,
			"back_color_id":    evt.BackColorID,
			"fore_color_id":    evt.ForeColorID,
			"formatted_month":  evt.FormattedMonth,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindByMonth(ctx context.Context, formattedMonth string) ([]EventWithEmployee, error) {
	var events []EventWithEmployee
	err := r.db.WithContext(ctx).
		Table("event").
		Select("event.*", "employee.first_name", "employee.last_name").
		Joins("JOIN employee ON employee.id = event.employee_id").
		Where("event.formatted_month = ?", formattedMonth).
		Order("event.start ASC").
		Scan(&events).Error
	return events, err
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
