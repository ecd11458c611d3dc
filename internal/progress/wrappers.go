package progress

// Single is a horizontal indicator that always fills from the start edge.
type Single struct {
	*Indicator
}

// NewSingle creates a horizontal indicator with range [0, 100] at 0.
func NewSingle(opts ...Option) *Single {
	return &Single{Indicator: newIndicator(opts...)}
}

// Apply sets every option present in o. Mode and Reverse do not apply to a
// single orientation indicator and are skipped.
func (s *Single) Apply(o Options) {
	o.Mode = nil
	o.Reverse = nil
	o.apply(s.Indicator)
}

// Dual is an indicator whose orientation and fill direction are selectable.
type Dual struct {
	*Indicator
}

// NewDual creates a horizontal, non-reversed indicator with range [0, 100] at 0.
func NewDual(opts ...Option) *Dual {
	return &Dual{Indicator: newIndicator(opts...)}
}

// Orientation returns the drawing axis.
func (d *Dual) Orientation() Orientation { return d.style.Orientation }

// SetOrientation switches between horizontal and vertical.
func (d *Dual) SetOrientation(o Orientation) { d.setOrientation(o) }

// Reverse reports whether the filled line grows from the end edge.
func (d *Dual) Reverse() bool { return d.style.Reverse }

// SetReverse sets the fill direction.
func (d *Dual) SetReverse(on bool) { d.setReverse(on) }

// Apply sets every option present in o.
func (d *Dual) Apply(o Options) {
	o.apply(d.Indicator)
}
