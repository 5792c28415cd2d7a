//go:build enumtry

package valid

//enumtry:derive_err Debug Equal
//enumtry:enum
type enumLight interface {
	Red()
	Yellow(remaining uint32)
	Green(uint32, bool)
}

//enumtry:enum Pair
type enumPairs[K comparable, V any] interface {
	Both(key K, value V)
	Neither()
}
