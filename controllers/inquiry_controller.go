package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/dto"
	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
	"github.com/pratapadwait/pratapliving/validator"
)

type InquiryController struct {
	service *services.InquiryService
	logger  logger.Logger
}

func NewInquiryController(service *services.InquiryService, l logger.Logger) *InquiryController {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InquiryController{service: service, logger: l}
}

// CreatePartnerInquiry handles POST /api/partner-inquiries.
func (ctl *InquiryController) CreatePartnerInquiry(c *gin.Context) {
	var req dto.PartnerInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs := validator.FromBindingError(err); len(verrs) > 0 {
			response.ValidationError(c, "Validation failed", fieldErrors(verrs))
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}

	inquiry, err := ctl.service.CreatePartnerInquiry(c.Request.Context(), &req)
	if err != nil {
		ctl.logger.Error("creating partner inquiry: %v", err)
		respondError(c, err, "Inquiry not found", "Failed to submit inquiry")
		return
	}
	response.Created(c, inquiry)
}

// CreateContactInquiry handles POST /api/contact-inquiries.
func (ctl *InquiryController) CreateContactInquiry(c *gin.Context) {
	var req dto.ContactInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs := validator.FromBindingError(err); len(verrs) > 0 {
			response.ValidationError(c, "Validation failed", fieldErrors(verrs))
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}

	inquiry, err := ctl.service.CreateContactInquiry(c.Request.Context(), &req)
	if err != nil {
		ctl.logger.Error("creating contact inquiry: %v", err)
		respondError(c, err, "Inquiry not found", "Failed to submit message")
		return
	}
	response.Created(c, inquiry)
}

// GetPartnerInquiries handles GET /api/partner-inquiries for operators.
func (ctl *InquiryController) GetPartnerInquiries(c *gin.Context) {
	inquiries, err := ctl.service.ListPartnerInquiries(c.Request.Context())
	if err != nil {
		ctl.logger.Error("listing partner inquiries: %v", err)
		response.ServerError(c, "Failed to fetch inquiries")
		return
	}
	response.OK(c, inquiries)
}

// GetContactInquiries handles GET /api/contact-inquiries for operators.
func (ctl *InquiryController) GetContactInquiries(c *gin.Context) {
	inquiries, err := ctl.service.ListContactInquiries(c.Request.Context())
	if err != nil {
		ctl.logger.Error("listing contact inquiries: %v", err)
		response.ServerError(c, "Failed to fetch inquiries")
		return
	}
	response.OK(c, inquiries)
}
