//go:build enumtry

package broken

import "fmt"

//enumtry:enum
type enumStruct struct {
	A int
}

//enumtry:enum
type enumResults interface {
	Bad() int
}

//enumtry:enum
type enumVariadic interface {
	Bad(xs ...int)
}

//enumtry:enum
type enumBlank interface {
	Bad(_ int)
}

//enumtry:enum
type enumCollide interface {
	Rust_Is()
	RustIs()
}

//enumtry:enum
//enumtry:derive_err Debug PartialEq
type enumDerive interface {
	A()
}

//enumtry:enum
type noPrefix interface {
	A()
}

//enumtry:enum
type enumEmbed interface {
	fmt.Stringer
	A()
}

//enumtry:enum
type enumTaken interface {
	A()
}

// Taken already exists, so enumTaken cannot generate it.
type Taken struct{}

//enumtry:enum
//enumtry:derive_err Debug
type enumOutcome interface {
	Ok(value int)
	Error(msg string)
}

//enumtry:enum
type enumPending interface {
	Wait()
}

// PendingWait already exists, so the Wait constructor of enumPending cannot.
func PendingWait() {}
