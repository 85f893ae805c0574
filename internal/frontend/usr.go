package frontend

import "github.com/google/uuid"

// usrNamespace roots every synthesised unique key, so two runs of ARMOR
// (possibly on different machines) derive the same USR for the same
// declaration identity.
var usrNamespace = uuid.MustParse("6f6e7c9a-2b3d-4d5e-9c1a-a3201c0c0001")

// SynthesizeUSR derives a stable opaque unique key for a declaration that
// has no linker-assigned USR (tree-sitter's C grammar has no notion of one).
// It is a deterministic, namespaced UUID over the declaration's identity
// (qualifiedName + dataType, mirroring the identity diff.Tree's key
// extractor already uses for overload discrimination), so re-parsing the
// same source always yields the same key — the stability invariant spec.md
// §3.1 requires of a USR.
func SynthesizeUSR(qualifiedName, dataType string) string {
	return uuid.NewSHA1(usrNamespace, []byte(qualifiedName+"\x00"+dataType)).String()
}
