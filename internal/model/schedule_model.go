package model

// ScheduleItem is one entry of the prioritized follow-up plan.
// Order within the plan is significant: base items come first, conditional
// category items are appended in a fixed order.
type ScheduleItem struct {
	Title       string `json:"title"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description"`
}
