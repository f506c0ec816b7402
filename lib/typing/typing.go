package typing

type KindDetails struct {
	Kind                string
	OptionalIntegerKind *IntKind
}

// IntKind tracks the width of an integer column so the destination type can be sized accordingly.
type IntKind int

const (
	NotSpecifiedKind IntKind = iota
	SmallIntegerKind
	IntegerKind
	BigIntegerKind
)

var (
	Invalid = KindDetails{
		Kind: "invalid",
	}

	Float = KindDetails{
		Kind: "float",
	}

	Integer = KindDetails{
		Kind: "int",
	}

	Boolean = KindDetails{
		Kind: "bool",
	}

	String = KindDetails{
		Kind: "string",
	}

	Timestamp = KindDetails{
		Kind: "timestamp",
	}
)

func BuildIntegerKind(kind IntKind) KindDetails {
	return KindDetails{Kind: Integer.Kind, OptionalIntegerKind: ToPtr(kind)}
}

func ToPtr[T any](v T) *T {
	return &v
}
