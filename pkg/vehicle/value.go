package vehicle

// PropValue is one runtime property instance seeded from a declaration.
type PropValue struct {
	Prop   int32
	AreaID int32
	Value  RawPropValues
}
