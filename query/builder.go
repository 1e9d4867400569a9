package query

// BaseBuilder accumulates errors raised while the builder is being filled in
// so that chaining never has to stop; they are reported by ToSOQL.
type BaseBuilder struct {
	errors []error
}

// AddError adds an error to the builder
func (bb *BaseBuilder) AddError(err error) {
	if err != nil {
		bb.errors = append(bb.errors, err)
	}
}

// HasErrors returns true if there are any errors
func (bb *BaseBuilder) HasErrors() bool {
	return len(bb.errors) > 0
}

// Errors returns all accumulated errors
func (bb *BaseBuilder) Errors() []error {
	return bb.errors
}

// FirstError returns the first error or nil
func (bb *BaseBuilder) FirstError() error {
	if len(bb.errors) > 0 {
		return bb.errors[0]
	}
	return nil
}

func (bb *BaseBuilder) resetErrors() {
	bb.errors = bb.errors[:0]
}
