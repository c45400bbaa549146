package service

import "errors"

// 服务层错误
var (
	ErrNotFound              = errors.New("资源不存在")
	ErrInvalidInput          = errors.New("请求参数无效")
	ErrInvalidQuantity       = errors.New("数量必须为正整数")
	ErrProductNotFound       = errors.New("商品不存在")
	ErrCartLineNotFound      = errors.New("购物车行不存在")
	ErrCartEmpty             = errors.New("购物车为空")
	ErrOrderNotFound         = errors.New("订单不存在")
	ErrPaymentMethodRequired = errors.New("请选择支付方式")
	ErrPaymentMethodInvalid  = errors.New("支付方式不支持")
	ErrAddressIncomplete     = errors.New("收货地址不完整")
	ErrStateInvalid          = errors.New("州/省不在允许范围内")
	ErrTrackingOutOfOrder    = errors.New("跟踪阶段不可跳跃推进")
	ErrTrackingStageUnknown  = errors.New("未知的跟踪阶段")
	ErrReturnNotEligible     = errors.New("订单不满足退货条件")
	ErrReturnAlreadyExists   = errors.New("该订单已提交过退货申请")
	ErrEmailExists           = errors.New("邮箱已被注册")
	ErrEmailInvalid          = errors.New("邮箱格式无效")
	ErrPasswordTooShort      = errors.New("密码长度不足")
	ErrInvalidCredentials    = errors.New("邮箱或密码错误")
	ErrAdminLoginNotAllowed  = errors.New("管理员账号请使用后台入口登录")
	ErrNotAdmin              = errors.New("非管理员账号")
	ErrTooManyLoginAttempts  = errors.New("登录尝试过于频繁，请稍后再试")
)
