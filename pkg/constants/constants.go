// pkg/constants/constants.go
package constants

//============== REQUEST STATUSES ==============

// Status values are stored verbatim in the DB; the pipeline is fixed.
const (
	StatusInProgress      = "in_progress" // initial state for every new request
	StatusPendingPresales = "Pending with Presales"
	StatusPendingReview   = "Pending review"
	StatusPendingApproval = "Pending approval"
	StatusClosed          = "Closed Request" // terminal
)

var Statuses = []string{
	StatusInProgress,
	StatusPendingPresales,
	StatusPendingReview,
	StatusPendingApproval,
	StatusClosed,
}

var statusSortOrder = map[string]int{
	StatusClosed:          1,
	StatusPendingPresales: 2,
	StatusPendingReview:   3,
	StatusPendingApproval: 4,
	StatusInProgress:      5,
}

// StatusSortOrder returns the display priority of a status; lower sorts
// first. Unknown statuses go to the end.
func StatusSortOrder(status string) int {
	if order, ok := statusSortOrder[status]; ok {
		return order
	}
	return 999
}

func IsValidStatus(status string) bool {
	_, ok := statusSortOrder[status]
	return ok
}

//============== CACHE KEYS ==============

const (
	// Dashboard stats snapshot.
	CacheKeyDashboardStats = "dashboard:stats"

	// Current refresh token jti per user. Format: refresh_jti:<userID> -> jti
	CacheKeyRefreshJTI = "refresh_jti:%d"
)

//============== ROLES ==============

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
