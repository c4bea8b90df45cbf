package mapper

import (
	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/pkg/foods"
)

func ToScheduleResponse(items []model.ScheduleItem) []dto.ScheduleItemResponse {
	out := make([]dto.ScheduleItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ScheduleItemResponse{
			Title:       item.Title,
			Timeframe:   item.Timeframe,
			Description: item.Description,
		})
	}
	return out
}

func ToFoodsResponse(suggestions map[string][]foods.Item) map[string][]dto.FoodItemResponse {
	out := make(map[string][]dto.FoodItemResponse, len(suggestions))
	for bundle, items := range suggestions {
		mapped := make([]dto.FoodItemResponse, 0, len(items))
		for _, item := range items {
			mapped = append(mapped, dto.FoodItemResponse{
				Name:         item.Name,
				ServingGrams: item.ServingGrams,
				Category:     item.Category,
			})
		}
		out[bundle] = mapped
	}
	return out
}
