package service

import (
	"strings"

	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// UserService 后台用户查询服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Search 用户列表，关键字对昵称/邮箱做不区分大小写子串匹配
func (s *UserService) Search(filter repository.UserListFilter) ([]models.User, int64, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return s.userRepo.List(filter)
}
