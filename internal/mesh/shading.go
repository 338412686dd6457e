package mesh

// ShadingType selects which normals feed the normal buffer.
type ShadingType int

const (
	Smooth ShadingType = iota
	Flat
)

func (s ShadingType) String() string {
	if s == Flat {
		return "flat"
	}
	return "smooth"
}

func (s ShadingType) Toggle() ShadingType {
	if s == Flat {
		return Smooth
	}
	return Flat
}
