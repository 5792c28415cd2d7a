//go:build enumtry

package decls

import "fmt"

//enumtry:enum
type enumStruct struct{} // want "`enumStruct` is not an enum"

//enumtry:enum
type enumResults interface {
	Bad() int // want "variant Bad of `enumResults` must not declare results"
}

//enumtry:enum
type enumVariadic interface {
	Bad(xs ...int) // want "variant Bad of `enumVariadic` must not be variadic"
}

//enumtry:enum
type enumCollide interface {
	Rust_Is()
	RustIs() // want "variants Rust_Is and RustIs of `enumCollide` both convert to RustIs"
}

//enumtry:enum
type noPrefix interface { // want "cannot derive a type name from `noPrefix`"
	A()
}

//enumtry:enum
type enumEmbed interface {
	fmt.Stringer // want "`enumEmbed` embeds fmt.Stringer"
	A()
}

//enumtry:enum
type enumTaken interface { // want "`Taken` is already declared"
	A()
}

type Taken struct{}

//enumtry:enum
type enumOutcome interface {
	Ok(value int)
	Error(msg string) // want "constructor OutcomeError of variant Error of `enumOutcome` clashes with the error type OutcomeError of `enumOutcome`"
}

//enumtry:enum
type enumPending interface {
	Wait() // want "constructor PendingWait of variant Wait of `enumPending` clashes with `PendingWait` declared at"
}

func PendingWait() {}

// enumUnmarked is not checked without the directive.
type enumUnmarked struct{}
