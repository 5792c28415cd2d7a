package other

// Point is referenced from enums in other packages.
type Point struct {
	X, Y int
}
