package basic

// Holder keeps the package non-empty without the enumtry tag.
type Holder struct{}
