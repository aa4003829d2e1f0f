package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dayflow/internal/model"
	"dayflow/internal/notify"
	"dayflow/internal/repository"
	"dayflow/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxLeaveDays = 366

type LeaveUsecase struct {
	repo     repository.LeaveRepository
	notifier notify.Notifier
	now      func() time.Time
}

func NewLeaveUsecase(repo repository.LeaveRepository, notifier notify.Notifier) *LeaveUsecase {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &LeaveUsecase{repo: repo, notifier: notifier, now: time.Now}
}

type LeaveInput struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Type     string `json:"type"`
	Remarks  string `json:"remarks"`
}

func (u *LeaveUsecase) Create(ctx context.Context, user *model.User, input LeaveInput) (*model.LeaveRequest, error) {
	from, err := time.Parse(model.DateLayout, strings.TrimSpace(input.FromDate))
	if err != nil {
		return nil, fmt.Errorf("%w: from_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := time.Parse(model.DateLayout, strings.TrimSpace(input.ToDate))
	if err != nil {
		return nil, fmt.Errorf("%w: to_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to_date is before from_date", ErrInvalidInput)
	}
	if int(to.Sub(from).Hours()/24)+1 > maxLeaveDays {
		return nil, fmt.Errorf("%w: leave cannot exceed %d days", ErrInvalidInput, maxLeaveDays)
	}
	if !model.ValidLeaveType(input.Type) {
		return nil, fmt.Errorf("%w: type must be one of paid, sick, unpaid", ErrInvalidInput)
	}

	leave := &model.LeaveRequest{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		FromDate:  from.Format(model.DateLayout),
		ToDate:    to.Format(model.DateLayout),
		Type:      input.Type,
		Status:    model.LeavePending,
		Remarks:   strings.TrimSpace(input.Remarks),
	}
	if err := u.repo.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (u *LeaveUsecase) List(ctx context.Context, userID string) ([]model.LeaveRequest, error) {
	return u.repo.GetByUserID(ctx, userID)
}

func (u *LeaveUsecase) Pending(ctx context.Context, reviewer *model.User) ([]model.LeaveRequest, error) {
	return u.repo.GetPending(ctx, reviewer.CompanyID)
}

func (u *LeaveUsecase) Approve(ctx context.Context, id string, reviewer *model.User) (*model.LeaveRequest, error) {
	return u.decide(ctx, id, model.LeaveApproved, reviewer)
}

func (u *LeaveUsecase) Reject(ctx context.Context, id string, reviewer *model.User) (*model.LeaveRequest, error) {
	return u.decide(ctx, id, model.LeaveRejected, reviewer)
}

func (u *LeaveUsecase) decide(ctx context.Context, id string, status string, reviewer *model.User) (*model.LeaveRequest, error) {
	leave, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if !SameCompany(reviewer, leave.User) {
		return nil, ErrNotFound
	}
	if leave.Status != model.LeavePending {
		return nil, ErrLeaveNotPending
	}

	var days []model.Attendance
	if status == model.LeaveApproved {
		days = LeaveDays(leave)
	}

	now := u.now()
	updated, err := u.repo.Decide(ctx, leave.ID, status, reviewer.ID, now, days)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrLeaveNotPending
	}
	leave.Status = status
	leave.ReviewedBy = &reviewer.ID
	leave.ReviewedAt = &now

	if leave.User != nil {
		notice := notify.LeaveNotice{
			To:       leave.User.Email,
			Name:     leave.User.Name,
			Status:   status,
			Type:     leave.Type,
			FromDate: leave.FromDate,
			ToDate:   leave.ToDate,
			Remarks:  leave.Remarks,
		}
		if err := u.notifier.LeaveDecided(ctx, notice); err != nil {
			logger.Logger.Warn("leave notification failed", zap.String("leave_id", leave.ID), zap.Error(err))
		}
	}
	return leave, nil
}

// LeaveDays expands an approved request into one leave row per calendar day.
func LeaveDays(leave *model.LeaveRequest) []model.Attendance {
	from, err := time.Parse(model.DateLayout, leave.FromDate)
	if err != nil {
		return nil
	}
	to, err := time.Parse(model.DateLayout, leave.ToDate)
	if err != nil {
		return nil
	}

	var days []model.Attendance
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, model.Attendance{
			UserID:    leave.UserID,
			CompanyID: leave.CompanyID,
			Date:      d.Format(model.DateLayout),
			Status:    model.StatusLeave,
		})
	}
	return days
}

// SameCompany reports whether reviewer may act on target. A reviewer without
// a company sees everyone.
func SameCompany(reviewer *model.User, target *model.User) bool {
	if reviewer.CompanyID == nil {
		return true
	}
	return target != nil && target.CompanyID != nil && *target.CompanyID == *reviewer.CompanyID
}
