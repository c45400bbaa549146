package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"

	"gorm.io/gorm"
)

// deliverOrder 将订单推进到 delivered，送达时间为 deliveredAt
func deliverOrder(t *testing.T, db *gorm.DB, orderNo string, deliveredAt time.Time) {
	t.Helper()
	svc := NewOrderService(repository.NewOrderRepository(db))
	for _, stage := range []string{
		constants.TrackingStageProcessing,
		constants.TrackingStageShipped,
		constants.TrackingStageDelivered,
	} {
		if err := svc.AdvanceStage(orderNo, stage, deliveredAt); err != nil {
			t.Fatalf("advance %s failed: %v", stage, err)
		}
	}
}

func newTestReturnService(db *gorm.DB) *ReturnService {
	return NewReturnService(repository.NewOrderRepository(db), repository.NewReturnRepository(db))
}

func TestEligibleAtExactly30Days(t *testing.T) {
	deliveredAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	order := &models.Order{
		Tracking: []models.TrackingStage{
			{Stage: constants.TrackingStageConfirmed, Completed: true, CompletedAt: &deliveredAt},
			{Stage: constants.TrackingStageProcessing, Completed: true, CompletedAt: &deliveredAt},
			{Stage: constants.TrackingStageShipped, Completed: true, CompletedAt: &deliveredAt},
			{Stage: constants.TrackingStageDelivered, Completed: true, CompletedAt: &deliveredAt},
		},
	}

	exactly := deliveredAt.Add(30 * 24 * time.Hour)
	if !EligibleAt(order, exactly) {
		t.Fatal("30.0 days after delivery should still be eligible")
	}
	if EligibleAt(order, exactly.Add(time.Second)) {
		t.Fatal("30 days + 1s after delivery must not be eligible")
	}
}

func TestEligibleAtRequiresDelivered(t *testing.T) {
	now := time.Now()
	order := &models.Order{Tracking: newTrackingStages(now)}
	if EligibleAt(order, now) {
		t.Fatal("undelivered order must not be eligible")
	}
	if EligibleAt(nil, now) {
		t.Fatal("nil order must not be eligible")
	}
}

func TestSubmitReturn(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestReturnService(db)
	order := seedOrder(t, db, 1, "SE-R1")
	deliverOrder(t, db, "SE-R1", time.Now().Add(-24*time.Hour))

	request, err := svc.Submit(SubmitReturnInput{UserID: 1, OrderNo: "SE-R1", Reason: "尺码不合适"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if request.Status != constants.ReturnStatusPending {
		t.Fatalf("expected pending status, got %s", request.Status)
	}
	if request.Total.String() != order.Total.String() {
		t.Fatalf("total snapshot mismatch: %s != %s", request.Total.String(), order.Total.String())
	}
	if len(request.Items) != 1 {
		t.Fatalf("expected 1 item snapshot, got %d", len(request.Items))
	}

	// 同一订单二次申请被拒
	if _, err := svc.Submit(SubmitReturnInput{UserID: 1, OrderNo: "SE-R1", Reason: "再退一次"}); !errors.Is(err, ErrReturnAlreadyExists) {
		t.Fatalf("expected ErrReturnAlreadyExists, got %v", err)
	}

	requests, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
}

func TestSubmitReturnRejections(t *testing.T) {
	db := setupServiceTest(t)
	svc := newTestReturnService(db)
	seedOrder(t, db, 1, "SE-R2")

	// 未送达
	if _, err := svc.Submit(SubmitReturnInput{UserID: 1, OrderNo: "SE-R2", Reason: "不想要了"}); !errors.Is(err, ErrReturnNotEligible) {
		t.Fatalf("expected ErrReturnNotEligible, got %v", err)
	}

	// 空原因
	deliverOrder(t, db, "SE-R2", time.Now())
	if _, err := svc.Submit(SubmitReturnInput{UserID: 1, OrderNo: "SE-R2", Reason: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// 超窗
	db.Model(&models.TrackingStage{}).
		Where("stage = ?", constants.TrackingStageDelivered).
		Update("completed_at", time.Now().Add(-31*24*time.Hour))
	if _, err := svc.Submit(SubmitReturnInput{UserID: 1, OrderNo: "SE-R2", Reason: "太晚了"}); !errors.Is(err, ErrReturnNotEligible) {
		t.Fatalf("expected ErrReturnNotEligible after window, got %v", err)
	}

	// 他人订单
	if _, err := svc.Submit(SubmitReturnInput{UserID: 2, OrderNo: "SE-R2", Reason: "不是我的"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
