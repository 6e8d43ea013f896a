package tables

// DefaultCities is the built-in city list every Parser starts with, in
// addition to whatever known_cities a caller supplies. It is opaque data —
// a seed of high-population US cities likely to appear without a caller
// ever naming them explicitly. Callers wanting full national coverage
// should still pass their own known_cities; this list exists so a Parser
// constructed with zero configuration still recognizes common cities.
var DefaultCities = []string{
	"NEW YORK", "LOS ANGELES", "CHICAGO", "HOUSTON", "PHOENIX",
	"PHILADELPHIA", "SAN ANTONIO", "SAN DIEGO", "DALLAS", "SAN JOSE",
	"AUSTIN", "JACKSONVILLE", "FORT WORTH", "COLUMBUS", "CHARLOTTE",
	"SAN FRANCISCO", "INDIANAPOLIS", "SEATTLE", "DENVER", "WASHINGTON",
	"BOSTON", "EL PASO", "NASHVILLE", "DETROIT", "OKLAHOMA CITY",
	"PORTLAND", "LAS VEGAS", "MEMPHIS", "LOUISVILLE", "BALTIMORE",
	"MILWAUKEE", "ALBUQUERQUE", "TUCSON", "FRESNO", "SACRAMENTO",
	"KANSAS CITY", "MESA", "ATLANTA", "OMAHA", "COLORADO SPRINGS",
	"RALEIGH", "MIAMI", "OAKLAND", "MINNEAPOLIS", "TULSA", "CLEVELAND",
	"WICHITA", "ARLINGTON", "GRAND RAPIDS",
}
