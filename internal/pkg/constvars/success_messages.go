package constvars

const (
	RegisterSuccessMessage        = "Successfully registered"
	LoginSuccessMessage           = "Successfully logged in"
	LogoutSuccessMessage          = "Successfully logged out"
	SessionSuccessMessage         = "Session is valid"
	GetDashboardSuccessMessage    = "Successfully fetched dashboard"
	UpdateSelectionSuccessMessage = "Successfully updated selection"
	CreateBookingSuccessMessage   = "Successfully created booking"
	UpdateBookingSuccessMessage   = "Successfully updated booking status"
	GetUsersSuccessMessage        = "Successfully fetched users"
	GetUserSuccessMessage         = "Successfully fetched user"
	UpdateUserStatusSuccess       = "Successfully updated user status"
	DeleteUserSuccessMessage      = "Successfully deleted user"
	GetServicesSuccessMessage     = "Successfully fetched services"
	CreateServiceSuccessMessage   = "Successfully created service"
	UpdateServiceSuccessMessage   = "Successfully updated service"
	DeleteServiceSuccessMessage   = "Successfully deleted service"
	GetAnalyticsSuccessMessage    = "Successfully fetched analytics"
	UploadPhotoSuccessMessage     = "Successfully uploaded photo"
)
