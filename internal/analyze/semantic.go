package analyze

import (
	"fmt"
	"go/types"
)

// ResolveSemanticType maps a declared Go type to a column semantic type.
// Pointers to supported basic types become the nullable variant; []byte is
// the byte-array type and is always nullable. Anything else is not a
// supported column type.
func ResolveSemanticType(t types.Type) (SemanticType, error) {
	if isByteSlice(t) {
		return SemanticType{Kind: KindByteArray, Nullable: true}, nil
	}

	if ptr, ok := t.(*types.Pointer); ok {
		kind, err := basicKind(ptr.Elem())
		if err != nil {
			return SemanticType{}, fmt.Errorf("pointer column: %w", err)
		}

		return SemanticType{Kind: kind, Nullable: true}, nil
	}

	kind, err := basicKind(t)
	if err != nil {
		return SemanticType{}, err
	}

	return SemanticType{Kind: kind}, nil
}

// basicKind maps a predeclared basic type to a semantic kind.
func basicKind(t types.Type) (SemanticKind, error) {
	basic, ok := t.(*types.Basic)
	if !ok {
		return KindUnknown, fmt.Errorf("type %s is not a supported column type", t)
	}

	switch basic.Kind() {
	case types.Bool:
		return KindBool, nil
	case types.Int, types.Int32:
		return KindInt, nil
	case types.Int64:
		return KindLong, nil
	case types.Float32:
		return KindFloat, nil
	case types.Float64:
		return KindDouble, nil
	case types.String:
		return KindString, nil
	default:
		return KindUnknown, fmt.Errorf("basic type %s is not a supported column type", basic)
	}
}

// isByteSlice reports whether t is []byte.
func isByteSlice(t types.Type) bool {
	slice, ok := t.(*types.Slice)
	if !ok {
		return false
	}

	basic, ok := slice.Elem().(*types.Basic)

	return ok && basic.Kind() == types.Uint8
}
