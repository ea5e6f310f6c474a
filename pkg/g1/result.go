package g1

// StatusOK is the success code. StatusFailure reports an invalid handle or a
// failure caught at the dispatch boundary.
const (
	StatusOK      int32 = 0
	StatusFailure int32 = -1
)

// IntResult carries a status and an integer payload.
type IntResult struct {
	Code  int32
	Value int32
}

// FloatResult carries a status and a float payload.
type FloatResult struct {
	Code  int32
	Value float32
}

// StringResult carries a status and an optional payload. Data is nil when the
// call failed or succeeded with nothing to report; callers check it
// independently of Code.
type StringResult struct {
	Code int32
	Data []byte
}

// OK reports whether the result carries the success code.
func (r StringResult) OK() bool { return r.Code == StatusOK }

// String returns the payload as text, or "" when Data is nil.
func (r StringResult) String() string { return string(r.Data) }

func stringResult(code int32, s string) StringResult {
	r := StringResult{Code: code}
	if code == StatusOK && s != "" {
		r.Data = []byte(s)
	}
	return r
}
