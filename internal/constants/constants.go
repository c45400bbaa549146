package constants

// 订单跟踪阶段常量
const (
	TrackingStageConfirmed  = "confirmed"
	TrackingStageProcessing = "processing"
	TrackingStageShipped    = "shipped"
	TrackingStageDelivered  = "delivered"
)

// TrackingStages 固定阶段顺序（单调推进）
var TrackingStages = []string{
	TrackingStageConfirmed,
	TrackingStageProcessing,
	TrackingStageShipped,
	TrackingStageDelivered,
}

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// 支付方式常量
const (
	PaymentMethodCard     = "card"
	PaymentMethodPaypal   = "paypal"
	PaymentMethodCOD      = "cash on delivery"
	PaymentMethodApplePay = "apple-pay"
)

// 用户角色常量
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 退货单状态常量
const (
	ReturnStatusPending = "pending"
)

// 队列与任务常量
const (
	QueueDefault           = "default"
	TaskOrderPaymentSettle = "order:payment_settle"
	TaskOrderProgressTick  = "order:progress_tick"
)

// CountryIndia 使用州枚举校验的指定国家
const CountryIndia = "India"

// IndianStates 印度州/联邦属地枚举，收货国家为 India 时州字段必须取自此列表
var IndianStates = []string{
	"Andaman and Nicobar Islands", "Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar",
	"Chandigarh", "Chhattisgarh", "Dadra and Nagar Haveli and Daman and Diu", "Delhi",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jammu and Kashmir", "Jharkhand",
	"Karnataka", "Kerala", "Ladakh", "Lakshadweep", "Madhya Pradesh", "Maharashtra",
	"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Puducherry", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

// ReturnWindowDays 退货窗口期（自送达起的天数）
const ReturnWindowDays = 30
