package contractparams

import "fmt"

// InvalidParamError reports an argument that does not fit its declared kind.
type InvalidParamError struct {
	Index  int
	Kind   Kind
	Value  string
	Reason string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("parameter %d (%s) %q: %s", e.Index, e.Kind, e.Value, e.Reason)
}
