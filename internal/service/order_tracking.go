package service

import (
	"time"

	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/models"
)

// stageIndex 返回阶段在固定顺序中的下标，未知阶段返回 -1
func stageIndex(stage string) int {
	for i, s := range constants.TrackingStages {
		if s == stage {
			return i
		}
	}
	return -1
}

// newTrackingStages 构建新订单的四个跟踪阶段行
// confirmed 在下单事务内即完成，其余阶段待后台任务推进。
func newTrackingStages(now time.Time) []models.TrackingStage {
	confirmedAt := now
	stages := make([]models.TrackingStage, 0, len(constants.TrackingStages))
	for _, name := range constants.TrackingStages {
		stage := models.TrackingStage{Stage: name}
		if name == constants.TrackingStageConfirmed {
			stage.Completed = true
			stage.CompletedAt = &confirmedAt
		}
		stages = append(stages, stage)
	}
	return stages
}

// findStage 按阶段名查找跟踪行
func findStage(stages []models.TrackingStage, name string) *models.TrackingStage {
	for i := range stages {
		if stages[i].Stage == name {
			return &stages[i]
		}
	}
	return nil
}

// checkAdvance 校验阶段推进是否合法
// 已完成的阶段重复推进视为幂等空操作（返回 alreadyDone），
// 前置阶段未完成时拒绝（阶段只能按固定顺序推进，不允许跳跃）。
func checkAdvance(stages []models.TrackingStage, target string) (alreadyDone bool, err error) {
	idx := stageIndex(target)
	if idx < 0 {
		return false, ErrTrackingStageUnknown
	}
	current := findStage(stages, target)
	if current == nil {
		return false, ErrOrderNotFound
	}
	if current.Completed {
		return true, nil
	}
	for i := 0; i < idx; i++ {
		prev := findStage(stages, constants.TrackingStages[i])
		if prev == nil || !prev.Completed {
			return false, ErrTrackingOutOfOrder
		}
	}
	return false, nil
}

// statusForStages 由跟踪阶段推导订单状态标签，取已完成的最高阶段
func statusForStages(stages []models.TrackingStage) string {
	status := constants.OrderStatusPending
	for i := len(constants.TrackingStages) - 1; i >= 0; i-- {
		stage := findStage(stages, constants.TrackingStages[i])
		if stage != nil && stage.Completed {
			switch constants.TrackingStages[i] {
			case constants.TrackingStageConfirmed:
				return constants.OrderStatusConfirmed
			case constants.TrackingStageProcessing:
				return constants.OrderStatusProcessing
			case constants.TrackingStageShipped:
				return constants.OrderStatusShipped
			case constants.TrackingStageDelivered:
				return constants.OrderStatusDelivered
			}
		}
	}
	return status
}

// activeStage 返回第一个未完成的阶段名，全部完成时返回空串
func activeStage(stages []models.TrackingStage) string {
	for _, name := range constants.TrackingStages {
		stage := findStage(stages, name)
		if stage == nil || !stage.Completed {
			return name
		}
	}
	return ""
}
