package constvars

const (
	URLParamUserID    = "userID"
	URLParamBookingID = "bookingID"
	URLParamServiceID = "serviceID"
	URLParamOwnerID   = "ownerID"
	URLParamStatus    = "status"

	QueryParamStatus   = "status"
	QueryParamEmployee = "employee"
	QueryParamService  = "service"
	QueryParamMonth    = "month"
	QueryParamRefresh  = "refresh"
	QueryParamQuery    = "q"
	QueryParamRole     = "role"
	QueryParamPage     = "page"
	QueryParamPageSize = "page_size"
	QueryParamDays     = "days"
)
