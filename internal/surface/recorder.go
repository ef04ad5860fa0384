package surface

// OpKind names a recorded draw request.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpCircle OpKind = "circle"
	OpLine   OpKind = "line"
)

// Op is a single recorded draw request. Only the field matching Kind is set.
type Op struct {
	Kind   OpKind  `json:"op"`
	Circle *Circle `json:"circle,omitempty"`
	Line   *Line   `json:"line,omitempty"`
}

// Recorder is a Surface that keeps the requests it receives. Clear drops
// everything recorded so far and records the clear itself.
type Recorder struct {
	ops []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) Circle(c Circle) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Circle: &c})
}

func (r *Recorder) Line(l Line) {
	l.Dash = append([]float64(nil), l.Dash...)
	r.ops = append(r.ops, Op{Kind: OpLine, Line: &l})
}

// Ops returns a copy of the recorded requests.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Reset forgets all recorded requests.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
