package models

// Plan names recognised by the entitlement resolvers
const (
	PlanFree    = "free"
	PlanStudent = "student" // Discounted student tier, unlocks all enhancements
	PlanPro     = "pro"     // Full paid tier
)

// Subscription statuses
const (
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
)
