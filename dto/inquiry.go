package dto

// PartnerInquiryRequest is the "list your property with us" form.
type PartnerInquiryRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	PropertyType     string `json:"propertyType" binding:"required"`
	PropertyLocation string `json:"propertyLocation" binding:"required"`
	Message          string `json:"message"`
}

// ContactInquiryRequest is the public contact form. Phone is optional
// but checked for shape when present.
type ContactInquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AuthRequest is the admin login payload for the optional auth gate.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the admin UI.
type AuthResponse struct {
	Token string `json:"token"`
}
