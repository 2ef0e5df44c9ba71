package weather

import "github.com/shopspring/decimal"

// wmoConditions maps WMO weather interpretation codes, as reported by
// Open-Meteo, to display text.
var wmoConditions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Conditions returns the text for a WMO code. Unknown codes report false.
func Conditions(code int) (string, bool) {
	s, ok := wmoConditions[code]
	return s, ok
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var sectorWidth = decimal.RequireFromString("22.5")

// Compass converts a bearing in degrees to one of 16 compass points.
// Bearings outside [0, 360) wrap around.
func Compass(degrees decimal.Decimal) string {
	sector := degrees.Div(sectorWidth).Round(0).IntPart() % int64(len(compassPoints))
	if sector < 0 {
		sector += int64(len(compassPoints))
	}
	return compassPoints[sector]
}
