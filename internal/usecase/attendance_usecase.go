package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/provider"
	"dayflow/internal/repository"

	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type AttendanceUsecase struct {
	repo repository.AttendanceRepository
	now  func() time.Time
}

func NewAttendanceUsecase(repo repository.AttendanceRepository) *AttendanceUsecase {
	return &AttendanceUsecase{repo: repo, now: time.Now}
}

// Today returns today's row, or nil when the user has not checked in.
func (u *AttendanceUsecase) Today(ctx context.Context, userID string) (*model.Attendance, error) {
	attendance, err := u.repo.GetByDate(ctx, userID, u.now().Format(model.DateLayout))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return attendance, err
}

func (u *AttendanceUsecase) CheckIn(ctx context.Context, user *model.User) (*model.Attendance, error) {
	now := u.now()
	today := now.Format(model.DateLayout)

	existing, err := u.repo.GetByDate(ctx, user.ID, today)
	if err == nil {
		if existing.Status == model.StatusLeave {
			return nil, ErrOnLeave
		}
		return nil, ErrAlreadyCheckedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendance := &model.Attendance{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Date:      today,
		CheckIn:   &now,
		Status:    model.StatusPresent,
	}
	if err := u.repo.Create(ctx, attendance); err != nil {
		// lost a race with a concurrent check-in
		if provider.IsCode(provider.Classify(err), provider.CodeUniqueViolation) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return attendance, nil
}

func (u *AttendanceUsecase) CheckOut(ctx context.Context, userID string) (*model.Attendance, error) {
	today := u.now().Format(model.DateLayout)

	existing, err := u.repo.GetByDate(ctx, userID, today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotCheckedIn
	} else if err != nil {
		return nil, err
	}
	if existing.Status == model.StatusLeave {
		return nil, ErrOnLeave
	}
	if existing.CheckIn == nil {
		return nil, ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return nil, ErrAlreadyCheckedOut
	}

	now := u.now()
	affected, err := u.repo.SetCheckOut(ctx, existing.ID, now)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAlreadyCheckedOut
	}
	existing.CheckOut = &now
	return existing, nil
}

func (u *AttendanceUsecase) History(ctx context.Context, userID string, limit int) ([]model.Attendance, error) {
	return u.repo.GetHistory(ctx, userID, ClampLimit(limit))
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

type AttendanceSummary struct {
	Month   int                `json:"month"`
	Year    int                `json:"year"`
	Counts  map[string]int     `json:"counts"`
	Records []model.Attendance `json:"records"`
}

func (u *AttendanceUsecase) Summary(ctx context.Context, userID string, month int, year int) (*AttendanceSummary, error) {
	if month == 0 && year == 0 {
		now := u.now()
		month, year = int(now.Month()), now.Year()
	}
	if err := validMonth(month, year); err != nil {
		return nil, err
	}

	records, err := u.repo.GetByMonth(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(model.AttendanceStatuses))
	for _, s := range model.AttendanceStatuses {
		counts[s] = 0
	}
	for _, r := range records {
		counts[r.Status]++
	}
	return &AttendanceSummary{Month: month, Year: year, Counts: counts, Records: records}, nil
}

func validMonth(month int, year int) error {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return fmt.Errorf("%w: month must be 1-12 and year a four-digit year", ErrInvalidInput)
	}
	return nil
}
