package models

// Stage is one step of the linear booking pipeline. Control flows strictly
// forward; a stage cannot be re-entered except by starting a new session.
type Stage string

const (
	StageSplash       Stage = "splash"
	StageCatalog      Stage = "catalog"
	StageDetails      Stage = "details"
	StageSeats        Stage = "seats"
	StageReview       Stage = "review"
	StageCheckout     Stage = "checkout"
	StageConfirmation Stage = "confirmation"
)

var stageOrder = map[Stage]int{
	StageSplash:       0,
	StageCatalog:      1,
	StageDetails:      2,
	StageSeats:        3,
	StageReview:       4,
	StageCheckout:     5,
	StageConfirmation: 6,
}

// CanAdvance reports whether moving from one stage directly to the next is
// a legal pipeline transition.
func CanAdvance(from, to Stage) bool {
	fromOrder, ok := stageOrder[from]
	if !ok {
		return false
	}
	toOrder, ok := stageOrder[to]
	if !ok {
		return false
	}
	return toOrder == fromOrder+1
}
