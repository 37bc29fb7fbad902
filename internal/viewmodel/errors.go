package viewmodel

// ViewModelError is a custom error type for view-model construction errors
type ViewModelError string

// Error implements the error interface
func (e ViewModelError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   ViewModelError = "config cannot be nil"
	ErrNilService  ViewModelError = "challenge service cannot be nil"
	ErrNilIdentity ViewModelError = "identity provider cannot be nil"
)
