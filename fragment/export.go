package fragment

import "github.com/amazon-ion/ion-go/ion"

// ExportIon serializes a FragmentGroup tree to Amazon Ion binary, grounded
// in the teacher's Ion-encoded fragment containers (convert/kfx) which
// round-trip the same kind of nested, struct-tagged payload end to end.
// Unlike KFX's shared symbol table and prolog machinery, this is a plain
// self-describing encode - flexml's fragment format has no external symbol
// catalog to satisfy.
func ExportIon(group FragmentGroup) ([]byte, error) {
	return ion.MarshalBinary(group)
}
