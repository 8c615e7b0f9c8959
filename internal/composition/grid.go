package composition

const (
	// RowCount is the number of material rows in a charge grid
	RowCount = 9
	// ElementCount is the number of element percentage columns per row
	ElementCount = 8
	// FieldCount is the number of text fields per row, elements plus weight
	FieldCount = ElementCount + 1
	// WeightColumn is the index of the weight field within a row
	WeightColumn = ElementCount
)

// Elements lists the element columns in grid order
var Elements = [ElementCount]string{"C", "Si", "Mn", "Cr", "Ni", "Mo", "V", "Nb"}

// Materials lists the fixed row labels in grid order
var Materials = [RowCount]string{
	"Scrap",
	"Granul Coke",
	"FeSi 75%",
	"FeMn 70% HiC",
	"FeCr 70% HiC",
	"FeMo 65%",
	"Nickel",
	"Scrap 316",
	"Scrap 410",
}

// Row holds the raw text of one material: eight element percentages and a weight.
type Row [FieldCount]string

// Grid holds the raw text of every input cell. Text is kept verbatim so that
// empty and partially typed values survive a save/load round trip.
type Grid [RowCount]Row

// Values is the parsed numeric form of a Grid.
type Values [RowCount][FieldCount]float64

var defaultGrid = Grid{
	{"0.15", "0.15", "0.2", "", "", "", "", "", "742"},
	{"90", "", "", "", "", "", "", "", "1.8"},
	{"", "70", "", "", "", "", "", "", "1.4"},
	{"7", "", "70", "", "", "", "", "", "4.8"},
	{"7", "", "", "70", "", "", "", "", ""},
	{"0.1", "", "", "", "", "65", "", "", ""},
	{"", "", "", "", "100", "", "", "", ""},
	{"0.06", "0.5", "0.5", "16", "10", "2", "", "", ""},
	{"0.03", "0.5", "0.4", "16", "", "", "", "", ""},
}

// DefaultGrid returns the built-in charge used when no saved data exists.
func DefaultGrid() Grid {
	return defaultGrid
}

// Values parses every cell of the grid.
func (g Grid) Values() Values {
	var v Values
	for r := range g {
		for c := range g[r] {
			v[r][c] = ParseField(g[r][c])
		}
	}
	return v
}

// ClearWeights empties the weight column of every row.
func (g *Grid) ClearWeights() {
	for r := range g {
		g[r][WeightColumn] = ""
	}
}

// Cell returns the text at row r, column c, or false when out of range.
func (g Grid) Cell(r, c int) (string, bool) {
	if r < 0 || r >= RowCount || c < 0 || c >= FieldCount {
		return "", false
	}
	return g[r][c], true
}

// SetCell stores text at row r, column c. Out of range indexes are ignored
// and reported as false.
func (g *Grid) SetCell(r, c int, text string) bool {
	if r < 0 || r >= RowCount || c < 0 || c >= FieldCount {
		return false
	}
	g[r][c] = text
	return true
}
