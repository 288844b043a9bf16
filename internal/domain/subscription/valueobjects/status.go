package valueobjects

type SubscriptionStatus string

const (
	StatusPending SubscriptionStatus = "pending"
	StatusActive  SubscriptionStatus = "active"
	StatusExpired SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the target status is reachable from s.
// Expired is terminal except for the admin extend path, which revives the
// latest ledger row back to active.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusPending: {StatusActive, StatusExpired},
		StatusActive:  {StatusExpired},
		StatusExpired: {StatusActive},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusPending: true,
	StatusActive:  true,
	StatusExpired: true,
}
