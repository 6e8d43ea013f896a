package tables

// Directionals is the canonical NESW directional token set. Order matters
// for the two-letter compounds only insofar as the Mealy matcher tries
// longer phrases first; plain lookup is order-independent.
var Directionals = []string{"NE", "NW", "SE", "SW", "N", "S", "E", "W"}

// DirectionalPhrases maps each canonical directional to the multi-word
// phrases that should fold to it, e.g. "NORTH WEST" -> "NW", used to build
// the Mealy matcher's continue/end table for directionals.
var DirectionalPhrases = map[string][][]string{
	"N":  {{"NORTH"}, {"NTH"}},
	"S":  {{"SOUTH"}, {"STH"}},
	"E":  {{"EAST"}},
	"W":  {{"WEST"}},
	"NE": {{"NORTHEAST"}, {"NORTH", "EAST"}},
	"NW": {{"NORTHWEST"}, {"NORTH", "WEST"}},
	"SE": {{"SOUTHEAST"}, {"SOUTH", "EAST"}},
	"SW": {{"SOUTHWEST"}, {"SOUTH", "WEST"}},
}
