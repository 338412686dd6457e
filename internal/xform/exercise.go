package xform

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

func heading(w io.Writer, title string) {
	line := strings.Repeat("-", len(title))
	fmt.Fprintf(w, "%s\n%s\n%s\n", line, title, line)
}

// PrintVectorExercise walks through vector addition, dot and cross products.
func PrintVectorExercise(w io.Writer) {
	heading(w, "vector test")

	x := mgl32.Vec3{1, 2, 3}
	fmt.Fprintf(w, "x = %s\n", FormatVec3(x))
	y := mgl32.Vec3{4, 5, 6}
	fmt.Fprintf(w, "y = %s\n", FormatVec3(y))

	fmt.Fprintln(w, "y += x")
	y = y.Add(x)
	fmt.Fprintf(w, "y => %s\n", FormatVec3(y))
	fmt.Fprintf(w, "x => %s\n", FormatVec3(x))

	fmt.Fprintf(w, "dot(x,y) => %g\n", x.Dot(y))

	fmt.Fprintln(w, "reset x as [1, 0, 0]")
	fmt.Fprintln(w, "reset y as [0, 1, 0]")
	x = mgl32.Vec3{1, 0, 0}
	y = mgl32.Vec3{0, 1, 0}
	fmt.Fprintln(w, "z = cross(x, y)")
	fmt.Fprintf(w, "z = %s\n", FormatVec3(x.Cross(y)))
}

// PrintMatrixExercise shows column-major storage, transposition and the
// difference between A*v and v*A.
func PrintMatrixExercise(w io.Writer) {
	fmt.Fprintln(w)
	heading(w, "matrix test")

	A := mgl32.Ident4()
	fmt.Fprint(w, FormatMat4(A))

	// columns are filled first
	for i := range A {
		A[i] = float32(i + 1)
	}
	fmt.Fprintln(w, "A = ")
	fmt.Fprint(w, FormatMat4(A))

	B := A.Transpose()
	fmt.Fprintln(w, "B = A^T")
	fmt.Fprintln(w, "B = ")
	fmt.Fprint(w, FormatMat4(B))

	axes := []struct {
		name string
		v    mgl32.Vec4
	}{
		{"x", mgl32.Vec4{1, 0, 0, 0}},
		{"y", mgl32.Vec4{0, 1, 0, 0}},
		{"z", mgl32.Vec4{0, 0, 1, 0}},
		{"w", mgl32.Vec4{0, 0, 0, 1}},
	}
	for _, a := range axes {
		fmt.Fprintf(w, "A*%s = %s\n", a.name, FormatVec4(A.Mul4x1(a.v)))
	}
	// a row vector times A equals A^T times the column vector
	for _, a := range axes {
		fmt.Fprintf(w, "%s*A = %s\n", a.name, FormatVec4(B.Mul4x1(a.v)))
	}
}

// PrintTransformExercise prints the standard modelling, viewing and
// projection matrices.
func PrintTransformExercise(w io.Writer) {
	fmt.Fprintln(w)
	heading(w, "transform test")

	mats := []struct {
		title string
		m     mgl32.Mat4
	}{
		{"Translation matrix", mgl32.Translate3D(1, 2, 3)},
		{"Rotation matrix", mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})},
		{"Scaling matrix", mgl32.Scale3D(2, 3, 4)},
		{"View matrix with lookAt()", mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})},
		{"Projection matrix with ortho()", mgl32.Ortho(-1, 1, -1, 1, 0.1, 100)},
		{"Projection matrix with frustum()", mgl32.Frustum(-1, 1, -1, 1, 1, 100)},
		{"Projection matrix with perspective()", mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)},
	}
	for _, e := range mats {
		fmt.Fprintln(w, e.title)
		fmt.Fprintln(w, FormatMat4(e.m))
	}
}
