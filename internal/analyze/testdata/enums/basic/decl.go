//go:build enumtry

package basic

import "time"

//enumtry:enum
//enumtry:derive_err Debug Equal
type enumMany interface {
	Zero()
	One(uint32)
	Two(uint32, int32)
	Named(at time.Time, count int)
}

//enumtry:enum Generic
type enumGenerics[T comparable, U any] interface {
	A(T)
	B(T, []U)
}

//enumtry:enum
type enumMixed interface {
	XMLIsNotCool()
	Rust_IsCoolThough(uint32)
	YMCA(named int16)
}

//enumtry:enum
type enumnothing interface{}

// enumIgnored has no directive and is only reflected when named explicitly.
type enumIgnored interface {
	Only()
}
