package queue

import (
	"encoding/json"

	"github.com/shopease-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPaymentSettle 支付结算任务（模拟支付完成后推进 processing）
	TaskOrderPaymentSettle = constants.TaskOrderPaymentSettle
	// TaskOrderProgressTick 模拟履约推进任务（shipped/delivered）
	TaskOrderProgressTick = constants.TaskOrderProgressTick
)

// OrderPaymentSettlePayload 支付结算任务载荷
type OrderPaymentSettlePayload struct {
	OrderNo string `json:"order_no"`
}

// OrderProgressTickPayload 履约推进任务载荷
type OrderProgressTickPayload struct {
	OrderNo string `json:"order_no"`
	Stage   string `json:"stage"`
}

// NewOrderPaymentSettleTask 创建支付结算任务
func NewOrderPaymentSettleTask(payload OrderPaymentSettlePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPaymentSettle, body), nil
}

// NewOrderProgressTickTask 创建履约推进任务
func NewOrderProgressTickTask(payload OrderProgressTickPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderProgressTick, body), nil
}
