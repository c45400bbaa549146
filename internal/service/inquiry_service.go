package service

import (
	"strings"
	"time"

	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/repository"
)

// SubmitInquiryInput 留言输入，UserID 为 0 表示游客
type SubmitInquiryInput struct {
	UserID  uint
	Name    string
	Email   string
	Message string
}

// InquiryService 联系留言服务
type InquiryService struct {
	inquiryRepo repository.InquiryRepository
}

// NewInquiryService 创建留言服务
func NewInquiryService(inquiryRepo repository.InquiryRepository) *InquiryService {
	return &InquiryService{inquiryRepo: inquiryRepo}
}

// Submit 提交留言
func (s *InquiryService) Submit(input SubmitInquiryInput) (*models.Inquiry, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
		return nil, ErrInvalidInput
	}
	inquiry := &models.Inquiry{
		UserID:    input.UserID,
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

// List 后台留言列表
func (s *InquiryService) List(filter repository.InquiryListFilter) ([]models.Inquiry, int64, error) {
	return s.inquiryRepo.List(filter)
}
