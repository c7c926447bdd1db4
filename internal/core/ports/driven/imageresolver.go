package driven

// ImageResolver turns a profile photo reference into a displayable location.
type ImageResolver interface {
	// Resolve returns the resolved location, or an error if the
	// reference cannot be displayed.
	Resolve(ref string) (string, error)
}
