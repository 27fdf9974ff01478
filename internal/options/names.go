package options

// Name is one of the option names understood in a `partially` payload.
type Name int

const (
	Unknown Name = iota
	Rename
	Omit
	Transparent
	AsType
	Derive
	Attribute
	SkipAttributes
	Crate
)

var names = map[string]Name{
	"rename":          Rename,
	"omit":            Omit,
	"transparent":     Transparent,
	"as_type":         AsType,
	"derive":          Derive,
	"attribute":       Attribute,
	"skip_attributes": SkipAttributes,
	"crate":           Crate,
}

// Lookup returns the option with the given name, or Unknown.
func Lookup(name string) Name {
	return names[name]
}

func (n Name) String() string {
	switch n {
	case Rename:
		return "rename"
	case Omit:
		return "omit"
	case Transparent:
		return "transparent"
	case AsType:
		return "as_type"
	case Derive:
		return "derive"
	case Attribute:
		return "attribute"
	case SkipAttributes:
		return "skip_attributes"
	case Crate:
		return "crate"
	default:
		return "unknown"
	}
}
