//go:build enumtry

package other

import (
	htemplate "html/template"
	ttemplate "text/template"
)

//enumtry:enum Shape
type enumShape interface {
	Dot(at Point)
	Render(*ttemplate.Template, *htemplate.Template)
}
