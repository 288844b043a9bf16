// Package constants defines shared constants used across the application.
package constants

// User roles
const (
	RoleAdmin      = "admin"
	RoleRestaurant = "restaurant"
)

// Subscription payment methods
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodManual   = "manual"
)

// FreePlanName is the reserved plan name used by the admin free-month grant.
const FreePlanName = "Free"

// FreePlanDurationDays is the default duration seeded for the free plan.
const FreePlanDurationDays = 30

// Table names
const (
	TableUsers             = "users"
	TableRestaurants       = "restaurants"
	TableCategories        = "categories"
	TableMenuItems         = "menu_items"
	TableSubscriptions     = "subscriptions"
	TableSubscriptionPlans = "subscription_plans"
)

// Context keys set by middleware
const (
	ContextKeyUserID       = "user_id"
	ContextKeyUserRole     = "user_role"
	ContextKeyRestaurant   = "restaurant"
	ContextKeySubscription = "subscription"
)

// DefaultThemeColor is applied to restaurants created without an explicit color.
const DefaultThemeColor = "#3B82F6"
