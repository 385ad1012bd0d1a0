package types

import (
	"io"

	"github.com/dmitrymomot/kit/pkg/fault"
	"github.com/dmitrymomot/kit/pkg/text"
)

// Resource accepts values implementing ResourceTyper, or io.Reader, io.Writer and
// io.Closer values, which are "stream" resources. Restriction limits the resource type.
type Resource struct {
	Restriction string
}

// Name implements Prototype.
func (r Resource) Name() string {
	if r.Restriction == "" {
		return "resource"
	}
	return "resource<" + r.Restriction + ">"
}

// Process implements Prototype.
func (r Resource) Process(value *any, _ Env) *fault.Error {
	kind := resourceType(*value)
	if kind == "" {
		return invalid("resource.invalid", "Only a resource is allowed.")
	}
	if r.Restriction != "" && kind != r.Restriction {
		t := text.New("Only a resource of type {{type}} is allowed.").
			SetParameter("type", r.Restriction).
			SetPlaceholderFlags("type", text.FlagQuote).
			SetDomain(Domain)
		return fault.New("resource.restricted").WithText(t).WithData(text.Technical, kind)
	}
	return nil
}

func resourceType(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case ResourceTyper:
		return r.ResourceType()
	case io.Reader, io.Writer, io.Closer:
		return "stream"
	}
	return ""
}
