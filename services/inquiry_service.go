package services

import (
	"context"
	"encoding/json"

	"github.com/olahol/melody"
	"gorm.io/gorm"

	"github.com/pratapadwait/pratapliving/dto"
	"github.com/pratapadwait/pratapliving/models"
	"github.com/pratapadwait/pratapliving/services/logger"
	"github.com/pratapadwait/pratapliving/validator"
)

// InquiryService stores partner and contact form submissions. Records
// are append-only; nothing updates or deletes them. New submissions are
// broadcast to connected admin dashboard sessions.
type InquiryService struct {
	db     *gorm.DB
	melody *melody.Melody
	logger logger.Logger
}

type InquiryServiceOptions struct {
	DB     *gorm.DB
	Melody *melody.Melody // optional; nil disables broadcasts
	Logger logger.Logger
}

func NewInquiryService(opts InquiryServiceOptions) *InquiryService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InquiryService{db: opts.DB, melody: opts.Melody, logger: l}
}

func (s *InquiryService) CreatePartnerInquiry(ctx context.Context, req *dto.PartnerInquiryRequest) (*models.PartnerInquiry, error) {
	if verrs := validator.ValidatePartnerInquiry(req); verrs != nil {
		return nil, verrs
	}

	inquiry := &models.PartnerInquiry{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PropertyType:     req.PropertyType,
		PropertyLocation: req.PropertyLocation,
		Message:          req.Message,
	}
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, err
	}
	s.broadcast("partner-inquiry", inquiry)
	return inquiry, nil
}

func (s *InquiryService) CreateContactInquiry(ctx context.Context, req *dto.ContactInquiryRequest) (*models.ContactInquiry, error) {
	if verrs := validator.ValidateContactInquiry(req); verrs != nil {
		return nil, verrs
	}

	inquiry := &models.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return nil, err
	}
	s.broadcast("contact-inquiry", inquiry)
	return inquiry, nil
}

func (s *InquiryService) ListPartnerInquiries(ctx context.Context) ([]models.PartnerInquiry, error) {
	var inquiries []models.PartnerInquiry
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (s *InquiryService) ListContactInquiries(ctx context.Context) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// broadcast pushes the new inquiry to every connected dashboard session.
// Failures only get logged; the submission itself already succeeded.
func (s *InquiryService) broadcast(kind string, inquiry interface{}) {
	if s.melody == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{"event": kind, "data": inquiry})
	if err != nil {
		s.logger.Error("encoding %s broadcast: %v", kind, err)
		return
	}
	if err := s.melody.Broadcast(payload); err != nil {
		s.logger.Error("broadcasting %s: %v", kind, err)
	}
}
