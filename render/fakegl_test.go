package render

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

type drawCall struct {
	Mode  gl.Enum
	First int
	Count int
}

type uniformUpload struct {
	Name  string
	Value []float32
}

// fakeGL records the calls made to it. Object names are handed out from a
// single counter so that every handle is distinct. Methods the renderer does
// not call are left to the nil embedded gl.Context and panic.
type fakeGL struct {
	gl.Context

	calls []string

	failCompile gl.Enum // shader type whose compilation fails
	failLink    bool
	noProgram   bool // CreateProgram returns the zero program
	noShader    bool // CreateShader returns the zero shader
	noBuffer    bool // CreateBuffer returns the zero buffer

	next          uint32
	shaderTypes   map[uint32]gl.Enum
	deleted       map[uint32]bool
	bound         gl.Buffer
	bufferData    map[uint32][]byte
	uniformNames  map[int32]string
	uniforms      []uniformUpload
	draws         []drawCall
	drawBuffers   []gl.Buffer
	attribSizes   []int
	viewport      [4]int
	clearColor    [4]float32
	programInUse  gl.Program
	enabledAttrib []gl.Attrib
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaderTypes:  make(map[uint32]gl.Enum),
		deleted:      make(map[uint32]bool),
		bufferData:   make(map[uint32][]byte),
		uniformNames: make(map[int32]string),
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) name() uint32 {
	f.next++
	return f.next
}

// called returns the number of recorded calls to the named method.
func (f *fakeGL) called(method string) int {
	n := 0
	for _, c := range f.calls {
		if c == method || len(c) > len(method) && c[:len(method)+1] == method+"(" {
			n++
		}
	}
	return n
}

func (f *fakeGL) uploads(name string) [][]float32 {
	var vals [][]float32
	for _, u := range f.uniforms {
		if u.Name == name {
			vals = append(vals, u.Value)
		}
	}
	return vals
}

func (f *fakeGL) Viewport(x, y, width, height int) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	f.viewport = [4]int{x, y, width, height}
}

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor(%v, %v, %v, %v)", red, green, blue, alpha)
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *fakeGL) Clear(mask gl.Enum) { f.record("Clear(%#x)", uint32(mask)) }

func (f *fakeGL) Enable(cap gl.Enum) { f.record("Enable(%#x)", uint32(cap)) }

func (f *fakeGL) CreateBuffer() gl.Buffer {
	f.record("CreateBuffer")
	if f.noBuffer {
		return gl.Buffer{}
	}
	return gl.Buffer{Value: f.name()}
}

func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer(%d)", b.Value)
	f.bound = b
}

func (f *fakeGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.record("BufferData(%d)", len(src))
	f.bufferData[f.bound.Value] = append([]byte(nil), src...)
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	f.record("CreateShader")
	if f.noShader {
		return gl.Shader{}
	}
	s := gl.Shader{Value: f.name()}
	f.shaderTypes[s.Value] = ty
	return s
}

func (f *fakeGL) ShaderSource(s gl.Shader, src string) { f.record("ShaderSource(%d)", s.Value) }

func (f *fakeGL) CompileShader(s gl.Shader) { f.record("CompileShader(%d)", s.Value) }

func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && f.failCompile != 0 && f.shaderTypes[s.Value] == f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string { return "syntax error" }

func (f *fakeGL) DeleteShader(s gl.Shader) {
	f.record("DeleteShader(%d)", s.Value)
	f.deleted[s.Value] = true
}

func (f *fakeGL) CreateProgram() gl.Program {
	f.record("CreateProgram")
	if f.noProgram {
		return gl.Program{}
	}
	return gl.Program{Init: true, Value: f.name()}
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) { f.record("AttachShader(%d)", s.Value) }

func (f *fakeGL) LinkProgram(p gl.Program) { f.record("LinkProgram(%d)", p.Value) }

func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeGL) GetProgramInfoLog(p gl.Program) string { return "unresolved symbol" }

func (f *fakeGL) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram(%d)", p.Value)
	f.deleted[p.Value] = true
}

func (f *fakeGL) UseProgram(p gl.Program) {
	f.record("UseProgram(%d)", p.Value)
	f.programInUse = p
}

func (f *fakeGL) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	f.record("GetAttribLocation(%s)", name)
	return gl.Attrib{Value: 7}
}

func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray(%d)", a.Value)
	f.enabledAttrib = append(f.enabledAttrib, a)
}

func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer(%d, %d, %d, %d)", dst.Value, size, stride, offset)
	f.attribSizes = append(f.attribSizes, size)
}

func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation(%s)", name)
	u := gl.Uniform{Value: int32(f.name())}
	f.uniformNames[u.Value] = name
	return u
}

func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	f.record("UniformMatrix4fv(%d)", dst.Value)
	f.uniforms = append(f.uniforms, uniformUpload{
		Name:  f.uniformNames[dst.Value],
		Value: append([]float32(nil), src...),
	})
}

func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays(%d, %d, %d)", uint32(mode), first, count)
	f.draws = append(f.draws, drawCall{Mode: mode, First: first, Count: count})
	f.drawBuffers = append(f.drawBuffers, f.bound)
}
