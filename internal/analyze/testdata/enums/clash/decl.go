//go:build enumtry

package clash

//enumtry:enum
type enumSignal interface {
	Go()
}

//enumtry:enum signal
type enumLowerSignal interface {
	Stop()
}
