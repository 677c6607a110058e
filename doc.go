// Package rotkin provides the table handling behind studies of stellar
// rotation: periods, ages, masses, metallicities and vertical velocities of
// stars from the McQuillan et al. (2014) rotation catalog, legacy age
// catalogs and Gaia derived kinematics.
//
// # Data Frames
//
// A DataFrame is an ordered collection of equally long fields. Each Field
// stores its values as float64:
//
//	Int      integer values, e.g. KIC identifiers
//	Float    continuous values, e.g. periods in days
//	String   indices into the StringPool of the frame, e.g. bin labels
//
// A NaN is a missing value in any field type. Values are compared and
// written by their textual form, so the Int 3 and the label "3" match.
//
// Tables are read from CSV, white space delimited text or xlsx files with
// ReadFile. Field types are detected from the data.
//
// # Operations
//
//	Merge         join two tables on key fields
//	AntiJoin      rows of a table whose key is absent in another
//	Cut           replace numeric fields by interval labels
//	AddTeff       effective temperature from Gaia BP-RP colour
//	VzDispersion  vertical velocity dispersion per metallicity bin
//	BinCounts     number of stars per bin
//	AgePeriod     legacy ages joined with McQuillan periods
//	Export        mass and period columns of the McQuillan data
//
// Figures are drawn by package geom and styled by a Theme.
package rotkin
