package repositories

import "errors"

var (
	// ErrSubscriptionExists is the definitive "already has a subscription"
	// signal from the locked trial insert.
	ErrSubscriptionExists = errors.New("subscription already exists for account")
)
