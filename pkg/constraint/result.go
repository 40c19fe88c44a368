package constraint

// Status is the outcome of evaluating a value.
type Status string

const (
	StatusValid    Status = "valid"
	StatusNotValid Status = "not_valid"
)

// Result is the immutable outcome of one evaluation. Error is only set when
// the status is StatusNotValid. Results are comparable with ==.
type Result struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewResult builds a Result, dropping the message of a valid result.
func NewResult(status Status, message string) Result {
	if status != StatusNotValid {
		return Result{Status: StatusValid}
	}
	return Result{Status: StatusNotValid, Error: message}
}

func Pass() Result {
	return Result{Status: StatusValid}
}

func Fail(message string) Result {
	return Result{Status: StatusNotValid, Error: message}
}

func (r Result) Valid() bool {
	return r.Status == StatusValid
}
