package models

// PushSubscription defines a stored browser push subscription. One row per
// endpoint; re-registering an endpoint replaces the stored subscription blob.
type PushSubscription struct {
	ID           int64  `json:"id" db:"id"`
	Endpoint     string `json:"endpoint" db:"endpoint"`
	Subscription string `json:"subscription" db:"subscription"` // raw subscription JSON
}
