package xform

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

func FormatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("[%g, %g, %g]", v[0], v[1], v[2])
}

func FormatVec4(v mgl32.Vec4) string {
	return fmt.Sprintf("[%g, %g, %g, %g]", v[0], v[1], v[2], v[3])
}

// FormatMat4 prints m row by row even though mgl32 stores it column major.
func FormatMat4(m mgl32.Mat4) string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "[%g, %g, %g, %g]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
	return b.String()
}
