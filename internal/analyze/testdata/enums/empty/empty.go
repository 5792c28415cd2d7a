package empty

// Plain has no enum declarations.
type Plain struct{}
