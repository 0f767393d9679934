package domain

// FallbackTeamColor is used for abbreviations outside the table below.
const FallbackTeamColor = "#fff"

var teamColors = map[string]string{
	"ATL": "#E03A3E", // Atlanta Hawks
	"BOS": "#007A33", // Boston Celtics
	"BKN": "#000000", // Brooklyn Nets
	"CHA": "#00788C", // Charlotte Hornets
	"CHI": "#CE1141", // Chicago Bulls
	"CLE": "#860038", // Cleveland Cavaliers
	"DAL": "#00538C", // Dallas Mavericks
	"DEN": "#0E2240", // Denver Nuggets
	"DET": "#C8102E", // Detroit Pistons
	"GSW": "#1D428A", // Golden State Warriors
	"HOU": "#CE1141", // Houston Rockets
	"IND": "#FDBB30", // Indiana Pacers
	"LAC": "#1D428A", // LA Clippers
	"LAL": "#552583", // Los Angeles Lakers
	"MEM": "#5D76A9", // Memphis Grizzlies
	"MIA": "#98002E", // Miami Heat
	"MIL": "#00471B", // Milwaukee Bucks
	"MIN": "#005083", // Minnesota Timberwolves
	"NOP": "#0C2340", // New Orleans Pelicans
	"NYK": "#006BB6", // New York Knicks
	"OKC": "#007AC1", // Oklahoma City Thunder
	"ORL": "#0077C0", // Orlando Magic
	"PHI": "#006BB6", // Philadelphia 76ers
	"PHX": "#1D1160", // Phoenix Suns
	"POR": "#E03A3E", // Portland Trail Blazers
	"SAC": "#5A2D81", // Sacramento Kings
	"SAS": "#C4CED4", // San Antonio Spurs
	"TOR": "#CE1141", // Toronto Raptors
	"UTA": "#002B5C", // Utah Jazz
	"WAS": "#E31837", // Washington Wizards
}

func TeamColor(abbreviation string) string {
	if c, ok := teamColors[abbreviation]; ok {
		return c
	}
	return FallbackTeamColor
}
