package reports

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ImpactStats summarizes the environmental savings of recycling one lot.
// All figures are per-lot totals rounded to whole units.
type ImpactStats struct {
	TreesSaved  int `json:"trees_saved"`
	WaterSaved  int `json:"water_saved"`  // litres
	CO2Avoided  int `json:"co2_avoided"`  // kg
	EnergySaved int `json:"energy_saved"` // kWh
	OilSaved    int `json:"oil_saved"`    // litres
}

// Per-ton coefficients, keyed by category substring. Treated as fixed
// configuration; sources are industry averages used by the certificate
// templates.
const (
	paperTreesPerTon  = 17
	paperWaterPerTon  = 26000
	paperCO2PerTon    = 900
	paperOilPerTon    = 1750
	plasticWaterPerTon  = 2000
	plasticCO2PerTon    = 1500
	plasticEnergyPerTon = 5774
	glassCO2PerTon    = 315
	glassEnergyPerTon = 42
	metalCO2PerTon    = 4000
	metalEnergyPerTon = 4000
	defaultCO2PerTon    = 1400
	defaultEnergyPerTon = 500
)

var leadingNumber = regexp.MustCompile(`[\d.]+`)

// ParseWeightInKg extracts the weight from a free-text quantity descriptor
// such as "500 Kg" or "2.5 Tons". A "ton"/"tonne" unit multiplies by 1000;
// anything else (including a bare number) is taken as kilograms. Returns 0
// when no numeric literal is present.
func ParseWeightInKg(quantity string) float64 {
	lower := strings.ToLower(strings.TrimSpace(quantity))
	if lower == "" {
		return 0
	}

	multiplier := 1.0
	if strings.Contains(lower, "ton") {
		multiplier = 1000
	}

	match := leadingNumber.FindString(lower)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}

	return value * multiplier
}

// CalculateImpact applies the per-ton coefficient table to a lot's category
// and quantity descriptor. Category matching is a case-insensitive substring
// check; unrecognized categories fall back to the mixed e-waste composite.
func CalculateImpact(category, quantity string) ImpactStats {
	weightTons := ParseWeightInKg(quantity) / 1000

	var stats ImpactStats
	cat := strings.ToLower(category)

	switch {
	case strings.Contains(cat, "paper"):
		stats.TreesSaved = roundTo(weightTons * paperTreesPerTon)
		stats.WaterSaved = roundTo(weightTons * paperWaterPerTon)
		stats.CO2Avoided = roundTo(weightTons * paperCO2PerTon)
		stats.OilSaved = roundTo(weightTons * paperOilPerTon)
	case strings.Contains(cat, "plastic"):
		stats.WaterSaved = roundTo(weightTons * plasticWaterPerTon)
		stats.CO2Avoided = roundTo(weightTons * plasticCO2PerTon)
		stats.EnergySaved = roundTo(weightTons * plasticEnergyPerTon)
	case strings.Contains(cat, "glass"):
		stats.CO2Avoided = roundTo(weightTons * glassCO2PerTon)
		stats.EnergySaved = roundTo(weightTons * glassEnergyPerTon)
	case strings.Contains(cat, "metal"), strings.Contains(cat, "aluminum"), strings.Contains(cat, "copper"):
		stats.CO2Avoided = roundTo(weightTons * metalCO2PerTon)
		stats.EnergySaved = roundTo(weightTons * metalEnergyPerTon)
	default:
		stats.CO2Avoided = roundTo(weightTons * defaultCO2PerTon)
		stats.EnergySaved = roundTo(weightTons * defaultEnergyPerTon)
	}

	return stats
}

func roundTo(v float64) int {
	return int(math.Round(v))
}

// CertificateID builds a compliance-certificate reference such as
// CERT-2026-PA-042 from the lot category and issue date.
func CertificateID(category string, date time.Time) string {
	catCode := strings.ToUpper(category)
	if len(catCode) > 2 {
		catCode = catCode[:2]
	}
	return fmt.Sprintf("CERT-%d-%s-%03d", date.Year(), catCode, rand.Intn(1000))
}

// ManifestID builds an e-waste manifest reference such as MAN-2026-00317.
func ManifestID(date time.Time) string {
	return fmt.Sprintf("MAN-%d-%05d", date.Year(), rand.Intn(100000))
}
