// Package repository persists the shopper's profile data: the restored
// session, the last submitted order (read exactly once by the confirmation
// screen) and a small order history.
package repository

const (
	userKey         = "profile:user"
	orderKey        = "profile:order"
	orderHistoryKey = "profile:order-history"
	lastLoginKey    = "profile:last-login"
)
