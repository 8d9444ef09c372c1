package model

// OrderStatus is the canonical lifecycle status assigned by the order service.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusAccepted   OrderStatus = "ACCEPTED"
	OrderStatusDenied     OrderStatus = "DENIED"
	OrderStatusPreparing  OrderStatus = "PREPARING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusPickedUp   OrderStatus = "PICKED_UP"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusAccepted: true, OrderStatusDenied: true},
	OrderStatusAccepted:   {OrderStatusPreparing: true, OrderStatusCancelled: true},
	OrderStatusPreparing:  {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:      {OrderStatusPickedUp: true, OrderStatusCancelled: true},
	OrderStatusPickedUp:   {OrderStatusDelivering: true, OrderStatusCancelled: true},
	OrderStatusDelivering: {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered:  {OrderStatusCompleted: true},
	OrderStatusDenied:     {},
	OrderStatusCancelled:  {},
	OrderStatusCompleted:  {},
}

// CanTransition reports whether the order service permits moving from one
// canonical status to another.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// Valid reports whether the value belongs to the canonical enumeration.
func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// Terminal reports whether no further transition is expected.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDenied || s == OrderStatusCancelled || s == OrderStatusCompleted
}

// TrackingComplete reports whether customer-side tracking should stop polling.
func (s OrderStatus) TrackingComplete() bool {
	return s == OrderStatusDelivered || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Bucket is a partition of a restaurant's orders by status.
type Bucket string

const (
	BucketActive    Bucket = "active"
	BucketCompleted Bucket = "completed"
	BucketCancelled Bucket = "cancelled"
)

var bucketByStatus = map[OrderStatus]Bucket{
	OrderStatusPending:    BucketActive,
	OrderStatusAccepted:   BucketActive,
	OrderStatusPreparing:  BucketActive,
	OrderStatusReady:      BucketActive,
	OrderStatusPickedUp:   BucketActive,
	OrderStatusDelivering: BucketActive,
	OrderStatusDelivered:  BucketCompleted,
	OrderStatusCompleted:  BucketCompleted,
	OrderStatusCancelled:  BucketCancelled,
	OrderStatusDenied:     BucketCancelled,
}

// BucketOf classifies a canonical status. ok is false for values outside the
// enumeration, which then land in no bucket.
func BucketOf(s OrderStatus) (Bucket, bool) {
	b, ok := bucketByStatus[s]
	return b, ok
}
