package entity

// Point is one symbol's closing value at a label of the comparison window.
type Point struct {
	Symbol string
	Seq    int
	Label  string
	Value  float64
}
