package dto

import (
	"encoding/json"

	"github.com/jubyaid123/hemovita/internal/model"
)

type PatientPayload struct {
	Age        *float64 `json:"age" validate:"omitempty,gte=0,lte=130"`
	Sex        string   `json:"sex" validate:"omitempty,oneof=male female other"`
	Pregnant   *bool    `json:"pregnant"`
	Country    string   `json:"country"`
	Population string   `json:"population"`
	Notes      string   `json:"notes"`
}

// GenerateReportRequest is the classification/schedule entrypoint. Labs maps
// marker identifiers to numeric readings; a null value means "not measured".
// RiskProfile is produced by an external risk service and passed through
// unmodified.
type GenerateReportRequest struct {
	Patient     PatientPayload      `json:"patient"`
	Labs        map[string]*float64 `json:"labs" validate:"required,min=1"`
	DietFilter  string              `json:"diet_filter"`
	RiskProfile json.RawMessage     `json:"risk_profile"`
}

type ScheduleItemResponse struct {
	Title       string `json:"title"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description"`
}

type FoodItemResponse struct {
	Name         string   `json:"name"`
	ServingGrams *float64 `json:"serving_g"`
	Category     string   `json:"category"`
}

type GenerateReportResponse struct {
	Labels         map[string]model.Status       `json:"labels"`
	SupplementPlan map[string][]string           `json:"supplement_plan"`
	Schedule       []ScheduleItemResponse        `json:"schedule"`
	NetworkNotes   []string                      `json:"network_notes"`
	Foods          map[string][]FoodItemResponse `json:"foods"`
	ReportText     string                        `json:"report_text"`
	RiskProfile    json.RawMessage               `json:"risk_profile,omitempty"`
}
