package seeder

import "math"

// Ratio divides num by den and returns 0 instead of NaN or Inf.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// ClickThroughRate is clicks per impression.
func ClickThroughRate(clicks, impressions int) float64 {
	return Ratio(float64(clicks), float64(impressions))
}

// EngagementRate is interactions (likes, comments, shares) per impression.
func EngagementRate(likes, comments, shares, impressions int) float64 {
	return Ratio(float64(likes+comments+shares), float64(impressions))
}

// CostPerMille scales cost per click by 1000 over the click-through rate.
func CostPerMille(costPerClick, ctr float64) float64 {
	return Ratio(costPerClick*1000, ctr)
}

func CostPerConversion(costPerClick float64, conversions int) float64 {
	if conversions <= 0 {
		return 0
	}
	return costPerClick * float64(conversions)
}
