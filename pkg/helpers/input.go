package helpers

// InputOptions configures AddValueToInputField.
type InputOptions struct {
	DoNotTapReturnKey bool
}

// AddValueToInputField asserts the input is visible, focuses and clears
// it, types text and, unless opts says otherwise, submits it. It stops at
// the first failing action.
func (h *Helpers) AddValueToInputField(elementID, text string, opts InputOptions) error {
	steps := []func() error{
		func() error { return h.AssertElementIsVisible(elementID) },
		func() error { return h.TapElement(elementID) },
		func() error { return h.ClearText(elementID) },
		func() error { return h.TypeText(elementID, text) },
	}
	if !opts.DoNotTapReturnKey {
		steps = append(steps, func() error { return h.TapReturnKey(elementID) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
