package elements

import "github.com/xtalgeom/nciscan/pkg/types/chem"

// element is one row of the reference table.  Distances are in Å and masses
// in unified atomic mass units (u).  A zero VDWRadius or Pauling value means
// the quantity is not tabulated for that element; no element has a true zero
// for either.
type element struct {
	AtomicNumber   int
	Name           string
	Mass           float64
	VDWRadius      float64
	Cordero        map[chem.BondOrder]float64
	Pyykko         map[chem.BondOrder]float64
	Pauling        float64
	Group          int
	Period         int
	Classification string
}

// table holds the supported subset of the periodic table: periods 1–4 main
// group plus the period-5 elements relevant to sigma-hole chemistry
// (Sn, Sb, Te, I, Xe).
//
// Sources: van der Waals radii per the standard Bondi/Wikipedia compilation;
// covalent radii from Cordero et al. (Dalton Trans. 2008, 2832) and
// Pyykkö & Atsumi (Chem. Eur. J. 15 (2009) 12770); electronegativities on the
// Pauling scale.
var table = map[string]element{
	"H": {1, "Hydrogen", 1.008, 1.20,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.31},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.32},
		2.20, 1, 1, "nonmetal"},
	"He": {2, "Helium", 4.002602, 1.40,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.28},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.46},
		0, 18, 1, "noble gas"},
	"Li": {3, "Lithium", 6.94, 1.82,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.28},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.33, chem.OrderDouble: 1.24},
		0.98, 1, 2, "alkali metal"},
	"Be": {4, "Beryllium", 9.0122, 1.53,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.96},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.02, chem.OrderDouble: 0.90, chem.OrderTriple: 0.85},
		1.57, 2, 2, "alkaline earth metal"},
	"B": {5, "Boron", 10.81, 1.92,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.84},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.85, chem.OrderDouble: 0.78, chem.OrderTriple: 0.73},
		2.04, 13, 2, "metalloid"},
	"C": {6, "Carbon", 12.011, 1.70,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.76},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.75, chem.OrderDouble: 0.67, chem.OrderTriple: 0.60},
		2.55, 14, 2, "nonmetal"},
	"N": {7, "Nitrogen", 14.007, 1.55,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.71},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.71, chem.OrderDouble: 0.60, chem.OrderTriple: 0.54},
		3.04, 15, 2, "nonmetal"},
	"O": {8, "Oxygen", 15.999, 1.52,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.66},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.63, chem.OrderDouble: 0.57, chem.OrderTriple: 0.53},
		3.44, 16, 2, "nonmetal"},
	"F": {9, "Fluorine", 18.998403163, 1.47,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.57},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.64, chem.OrderDouble: 0.59, chem.OrderTriple: 0.53},
		3.98, 17, 2, "halogen"},
	"Ne": {10, "Neon", 20.1797, 1.54,
		map[chem.BondOrder]float64{chem.OrderSingle: 0.58},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.67, chem.OrderDouble: 0.96},
		0, 18, 2, "noble gas"},
	"Na": {11, "Sodium", 22.98976928, 2.27,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.66},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.55, chem.OrderDouble: 1.60},
		0.93, 1, 3, "alkali metal"},
	"Mg": {12, "Magnesium", 24.305, 1.73,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.41},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.39, chem.OrderDouble: 1.32, chem.OrderTriple: 1.27},
		1.31, 2, 3, "alkaline earth metal"},
	"Al": {13, "Aluminum", 26.9815385, 1.84,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.21},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.26, chem.OrderDouble: 1.13, chem.OrderTriple: 1.11},
		1.61, 13, 3, "post-transition metal"},
	"Si": {14, "Silicon", 28.085, 2.10,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.11},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.16, chem.OrderDouble: 1.07, chem.OrderTriple: 1.02},
		1.90, 14, 3, "metalloid"},
	"P": {15, "Phosphorus", 30.973761998, 1.80,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.07},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.11, chem.OrderDouble: 1.02, chem.OrderTriple: 0.94},
		2.19, 15, 3, "nonmetal"},
	"S": {16, "Sulfur", 32.06, 1.80,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.05},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.03, chem.OrderDouble: 0.94, chem.OrderTriple: 0.95},
		2.58, 16, 3, "nonmetal"},
	"Cl": {17, "Chlorine", 35.45, 1.75,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.02},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.99, chem.OrderDouble: 0.95, chem.OrderTriple: 0.93},
		3.16, 17, 3, "halogen"},
	"Ar": {18, "Argon", 39.948, 1.88,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.06},
		map[chem.BondOrder]float64{chem.OrderSingle: 0.96, chem.OrderDouble: 1.07, chem.OrderTriple: 0.96},
		0, 18, 3, "noble gas"},
	"K": {19, "Potassium", 39.0983, 2.75,
		map[chem.BondOrder]float64{chem.OrderSingle: 2.03},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.96, chem.OrderDouble: 1.93},
		0.82, 1, 4, "alkali metal"},
	"Ca": {20, "Calcium", 40.078, 2.31,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.76},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.71, chem.OrderDouble: 1.47, chem.OrderTriple: 1.33},
		1.00, 2, 4, "alkaline earth metal"},
	"Fe": {26, "Iron", 55.845, 2.00,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.42},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.16, chem.OrderDouble: 1.09, chem.OrderTriple: 1.02},
		1.83, 8, 4, "transition metal"},
	"Ni": {28, "Nickel", 58.6934, 1.63,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.24},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.10, chem.OrderDouble: 1.01, chem.OrderTriple: 1.01},
		1.91, 10, 4, "transition metal"},
	"Cu": {29, "Copper", 63.546, 1.40,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.32},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.12, chem.OrderDouble: 1.15, chem.OrderTriple: 1.20},
		1.90, 11, 4, "transition metal"},
	"Zn": {30, "Zinc", 65.38, 1.39,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.22},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.18, chem.OrderDouble: 1.20},
		1.65, 12, 4, "transition metal"},
	"As": {33, "Arsenic", 74.921595, 1.85,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.19},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.21, chem.OrderDouble: 1.14, chem.OrderTriple: 1.06},
		2.18, 15, 4, "metalloid"},
	"Se": {34, "Selenium", 78.971, 1.90,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.20},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.16, chem.OrderDouble: 1.07, chem.OrderTriple: 1.07},
		2.55, 16, 4, "nonmetal"},
	"Br": {35, "Bromine", 79.904, 1.85,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.20},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.14, chem.OrderDouble: 1.09, chem.OrderTriple: 1.10},
		2.96, 17, 4, "halogen"},
	"Kr": {36, "Krypton", 83.798, 2.02,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.16},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.17, chem.OrderDouble: 1.21, chem.OrderTriple: 1.08},
		3.00, 18, 4, "noble gas"},
	"Sn": {50, "Tin", 118.71, 2.17,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.39},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.40, chem.OrderDouble: 1.30, chem.OrderTriple: 1.32},
		1.96, 14, 5, "post-transition metal"},
	"Sb": {51, "Antimony", 121.76, 2.06,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.39},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.40, chem.OrderDouble: 1.33, chem.OrderTriple: 1.27},
		2.05, 15, 5, "metalloid"},
	"Te": {52, "Tellurium", 127.60, 2.06,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.38},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.36, chem.OrderDouble: 1.28, chem.OrderTriple: 1.21},
		2.10, 16, 5, "metalloid"},
	"I": {53, "Iodine", 126.90447, 1.98,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.39},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.33, chem.OrderDouble: 1.29, chem.OrderTriple: 1.25},
		2.66, 17, 5, "halogen"},
	"Xe": {54, "Xenon", 131.293, 0,
		map[chem.BondOrder]float64{chem.OrderSingle: 1.40},
		map[chem.BondOrder]float64{chem.OrderSingle: 1.31, chem.OrderDouble: 1.35, chem.OrderTriple: 1.22},
		0, 18, 5, "noble gas"},
}
