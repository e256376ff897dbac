package helpers

import (
	"ecobid/internal/reports"
)

// Request/Response DTOs
type ImpactRequest struct {
	Category string `form:"category" binding:"required"`
	Quantity string `form:"quantity" binding:"required"`
}

type ImpactResponse struct {
	Category    string  `json:"category"`
	Quantity    string  `json:"quantity"`
	WeightKg    float64 `json:"weight_kg"`
	TreesSaved  int     `json:"trees_saved"`
	WaterSaved  int     `json:"water_saved"`
	CO2Avoided  int     `json:"co2_avoided"`
	EnergySaved int     `json:"energy_saved"`
	OilSaved    int     `json:"oil_saved"`
}

// NewImpactResponse maps computed impact stats to the response shape
func NewImpactResponse(req ImpactRequest, weightKg float64, stats reports.ImpactStats) ImpactResponse {
	return ImpactResponse{
		Category:    req.Category,
		Quantity:    req.Quantity,
		WeightKg:    weightKg,
		TreesSaved:  stats.TreesSaved,
		WaterSaved:  stats.WaterSaved,
		CO2Avoided:  stats.CO2Avoided,
		EnergySaved: stats.EnergySaved,
		OilSaved:    stats.OilSaved,
	}
}
