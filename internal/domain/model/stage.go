package model

// Stage is the simplified display projection of a canonical status. It is the
// single definition used for rendering and timelines everywhere in the service.
type Stage string

const (
	StagePlaced    Stage = "placed"
	StageAccepted  Stage = "accepted"
	StagePreparing Stage = "preparing"
	StageReady     Stage = "ready"
	StagePickedUp  Stage = "pickedUp"
	StageDelivered Stage = "delivered"
	StageCancelled Stage = "cancelled"
)

var stageByStatus = map[OrderStatus]Stage{
	OrderStatusPending:    StagePlaced,
	OrderStatusAccepted:   StageAccepted,
	OrderStatusPreparing:  StagePreparing,
	OrderStatusReady:      StageReady,
	OrderStatusPickedUp:   StagePickedUp,
	OrderStatusDelivering: StagePickedUp,
	OrderStatusDelivered:  StageDelivered,
	OrderStatusCompleted:  StageDelivered,
	OrderStatusCancelled:  StageCancelled,
}

// StageOf projects a canonical status onto its display stage. Unmapped values,
// DENIED included, fall back to placed.
func StageOf(s OrderStatus) Stage {
	if stage, ok := stageByStatus[s]; ok {
		return stage
	}
	return StagePlaced
}

// progressRank orders statuses along the forward delivery chain so timeline
// synthesis can tell which milestones an order has already passed.
var progressRank = map[OrderStatus]int{
	OrderStatusAccepted:   1,
	OrderStatusPreparing:  2,
	OrderStatusReady:      3,
	OrderStatusPickedUp:   4,
	OrderStatusDelivering: 5,
	OrderStatusDelivered:  6,
	OrderStatusCompleted:  6,
}
