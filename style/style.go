package style

// Style is an immutable text-attribute update paired with optional
// foreground and background colorants. A nil colorant pointer means "no
// change"; it is distinct from an explicit Default colorant.
type Style struct {
	Format     FormatUpdate
	Foreground *Colorant
	Background *Colorant
}

// WithForeground returns a copy of s with its foreground colorant set.
func (s Style) WithForeground(c Colorant) Style {
	s.Foreground = &c
	return s
}

// WithBackground returns a copy of s with its background colorant set.
func (s Style) WithBackground(c Colorant) Style {
	s.Background = &c
	return s
}

// IsEmpty reports whether s has no attribute changes and no colorants,
// meaning it serializes to nothing.
func (s Style) IsEmpty() bool {
	return s.Format.isEmpty() && s.Foreground == nil && s.Background == nil
}

// Negate swaps the format update's disable/enable sets and replaces each
// non-nil, non-default colorant with Default. A colorant that is already
// Default, or unset, stays unset, so negating twice is only an involution
// when the original style carries no defaults.
func (s Style) Negate() Style {
	out := Style{Format: s.Format.negate()}
	if s.Foreground != nil && s.Foreground.Kind != KindDefault {
		d := Default()
		out.Foreground = &d
	}
	if s.Background != nil && s.Background.Kind != KindDefault {
		d := Default()
		out.Background = &d
	}
	return out
}
