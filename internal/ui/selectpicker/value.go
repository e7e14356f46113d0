package selectpicker

// valueController holds the committed selection in one of two ownership
// modes, fixed at construction. Controlled mode reads through the
// caller's pointer and never writes it; the caller applies change
// notifications to their own store. Uncontrolled mode owns the value
// internally, seeded from the configured default.
type valueController struct {
	external *string
	internal string
}

func newValueController(external *string, defaultValue string) valueController {
	if external != nil {
		return valueController{external: external}
	}
	return valueController{internal: defaultValue}
}

func (v valueController) controlled() bool {
	return v.external != nil
}

// get returns the committed value, "" meaning no selection.
func (v valueController) get() string {
	if v.external != nil {
		return *v.external
	}
	return v.internal
}

// set commits a value. In controlled mode the store is caller-owned, so
// this is a no-op; the change notification carries the value instead.
func (v valueController) set(value string) valueController {
	if v.external == nil {
		v.internal = value
	}
	return v
}
