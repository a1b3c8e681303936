// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthLoginSuccess       = "auth.login_success"

	// OTP
	KeyOTPSent     = "otp.sent"
	KeyOTPVerified = "otp.verified"
	KeyOTPInvalid  = "otp.invalid"
	KeyOTPFailed   = "otp.send_failed"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Descriptions
	KeyDescriptionGenerated = "description.generated"
	KeyDescriptionFailed    = "description.generation_failed"
	KeyLogCreated           = "description_log.created"
	KeyLogUpdated           = "description_log.updated"
	KeyLogDeleted           = "description_log.deleted"
	KeyLogNotFound          = "description_log.not_found"

	// Salla
	KeySallaProductSaved = "salla.product_saved"
	KeySallaWebhookError = "salla.webhook_error"

	// Upload
	KeyUploadSuccess = "upload.success"
	KeyUploadFailed  = "upload.failed"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
)
