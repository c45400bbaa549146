package i18n

// messages 各语言文案表
var messages = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":             "请求参数错误",
		"error.unauthorized":            "未授权访问",
		"error.forbidden":               "没有权限执行该操作",
		"error.not_found":               "资源不存在",
		"error.internal":                "服务器内部错误",
		"error.auth_header_missing":     "缺少认证头",
		"error.auth_header_invalid":     "认证头格式错误",
		"error.token_invalid":           "登录状态无效，请重新登录",
		"error.jwt_secret_missing":      "服务端未配置签名密钥",
		"error.rate_limited":            "操作过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":  "限流服务暂不可用",
		"error.login_too_many":          "登录尝试过于频繁，请 %d 秒后重试",
		"error.invalid_credentials":     "邮箱或密码错误",
		"error.email_exists":            "该邮箱已被注册",
		"error.email_invalid":           "邮箱格式不正确",
		"error.password_too_short":      "密码长度不足",
		"error.admin_login_not_allowed": "管理员账号请从管理端登录",
		"error.not_admin":               "该账号不是管理员",
		"error.invalid_input":           "请求参数不合法",
		"error.invalid_quantity":        "商品数量不合法",
		"error.product_not_found":       "商品不存在",
		"error.cart_line_not_found":     "购物车条目不存在",
		"error.cart_empty":              "购物车为空",
		"error.order_not_found":         "订单不存在",
		"error.payment_method_required": "请选择支付方式",
		"error.payment_method_invalid":  "不支持的支付方式",
		"error.address_incomplete":      "收货地址信息不完整",
		"error.state_invalid":           "省/邦信息不正确",
		"error.tracking_out_of_order":   "物流阶段不能跳跃推进",
		"error.tracking_stage_unknown":  "未知的物流阶段",
		"error.return_not_eligible":     "该订单不满足退货条件",
		"error.return_already_exists":   "该订单已提交过退货申请",
		"error.user_id_invalid":         "用户标识不合法",
		"error.user_id_type_invalid":    "用户标识类型错误",
		"error.admin_id_invalid":        "管理员标识不合法",
		"error.admin_id_type_invalid":   "管理员标识类型错误",
		"error.user_not_found":          "用户不存在",
		"error.product_fetch_failed":    "获取商品失败",
		"error.product_create_failed":   "创建商品失败",
		"error.product_delete_failed":   "删除商品失败",
		"error.cart_fetch_failed":       "获取购物车失败",
		"error.cart_update_failed":      "更新购物车失败",
		"error.checkout_failed":         "提交订单失败",
		"error.order_fetch_failed":      "获取订单失败",
		"error.order_advance_failed":    "推进订单状态失败",
		"error.simulate_failed":         "订单配送模拟启动失败",
		"error.return_check_failed":     "查询退货资格失败",
		"error.return_submit_failed":    "提交退货申请失败",
		"error.return_fetch_failed":     "获取退货申请失败",
		"error.register_failed":         "注册失败",
		"error.login_failed":            "登录失败",
		"error.user_fetch_failed":       "获取用户信息失败",
		"error.user_list_failed":        "获取用户列表失败",
		"error.profile_update_failed":   "更新资料失败",
		"error.inquiry_submit_failed":   "提交留言失败",
		"error.inquiry_list_failed":     "获取留言列表失败",
	},
	LocaleEnUS: {
		"error.bad_request":             "invalid request parameters",
		"error.unauthorized":            "unauthorized",
		"error.forbidden":               "permission denied",
		"error.not_found":               "resource not found",
		"error.internal":                "internal server error",
		"error.auth_header_missing":     "missing authorization header",
		"error.auth_header_invalid":     "malformed authorization header",
		"error.token_invalid":           "session expired, please sign in again",
		"error.jwt_secret_missing":      "server signing key not configured",
		"error.rate_limited":            "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":  "rate limiter unavailable",
		"error.login_too_many":          "too many login attempts, retry in %d seconds",
		"error.invalid_credentials":     "invalid email or password",
		"error.email_exists":            "email already registered",
		"error.email_invalid":           "invalid email address",
		"error.password_too_short":      "password too short",
		"error.admin_login_not_allowed": "admin accounts must sign in from the admin portal",
		"error.not_admin":               "account is not an administrator",
		"error.invalid_input":           "invalid input",
		"error.invalid_quantity":        "invalid item quantity",
		"error.product_not_found":       "product not found",
		"error.cart_line_not_found":     "cart item not found",
		"error.cart_empty":              "cart is empty",
		"error.order_not_found":         "order not found",
		"error.payment_method_required": "payment method is required",
		"error.payment_method_invalid":  "unsupported payment method",
		"error.address_incomplete":      "shipping address is incomplete",
		"error.state_invalid":           "invalid state for the selected country",
		"error.tracking_out_of_order":   "tracking stages must advance in order",
		"error.tracking_stage_unknown":  "unknown tracking stage",
		"error.return_not_eligible":     "order is not eligible for return",
		"error.return_already_exists":   "a return request already exists for this order",
		"error.user_id_invalid":         "invalid user identity",
		"error.user_id_type_invalid":    "malformed user identity",
		"error.admin_id_invalid":        "invalid admin identity",
		"error.admin_id_type_invalid":   "malformed admin identity",
		"error.user_not_found":          "user not found",
		"error.product_fetch_failed":    "failed to fetch products",
		"error.product_create_failed":   "failed to create product",
		"error.product_delete_failed":   "failed to delete product",
		"error.cart_fetch_failed":       "failed to fetch cart",
		"error.cart_update_failed":      "failed to update cart",
		"error.checkout_failed":         "failed to place order",
		"error.order_fetch_failed":      "failed to fetch orders",
		"error.order_advance_failed":    "failed to advance order status",
		"error.simulate_failed":         "failed to start delivery simulation",
		"error.return_check_failed":     "failed to check return eligibility",
		"error.return_submit_failed":    "failed to submit return request",
		"error.return_fetch_failed":     "failed to fetch return requests",
		"error.register_failed":         "registration failed",
		"error.login_failed":            "login failed",
		"error.user_fetch_failed":       "failed to fetch user profile",
		"error.user_list_failed":        "failed to fetch users",
		"error.profile_update_failed":   "failed to update profile",
		"error.inquiry_submit_failed":   "failed to submit inquiry",
		"error.inquiry_list_failed":     "failed to fetch inquiries",
	},
}
