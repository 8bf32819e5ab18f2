package ir

import "fmt"

type Kind int

const (
	RootKind Kind = iota
	ObjectKind
	ArrayKind
	StringKind
	NumberKind
	BoolKind
	NullKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		RootKind:   "Root",
		ObjectKind: "Object",
		ArrayKind:  "Array",
		StringKind: "String",
		NumberKind: "Number",
		BoolKind:   "Bool",
		NullKind:   "Null",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Root":   RootKind,
		"Object": ObjectKind,
		"Array":  ArrayKind,
		"String": StringKind,
		"Number": NumberKind,
		"Bool":   BoolKind,
		"Null":   NullKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		RootKind,
		ObjectKind,
		ArrayKind,
		StringKind,
		NumberKind,
		BoolKind,
		NullKind,
	}
}

// IsLeaf reports whether nodes of this kind carry no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case RootKind, ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
