package diff

import "github.com/armor-abi/armor/internal/apicontext"

// Contexts diffs the root declarations of two normalized contexts, honoring
// whichever context's exclusion set names a qualified name (excluding a
// name from either revision suppresses it from both, since a removed
// exclusion target is still not interesting and an added one was never
// interesting either). Only root declarations are checked against the
// exclusion sets; a nested declaration such as a field is reported even when
// its qualified name is listed.
func Contexts(base, head *apicontext.Context) []*Record {
	excluded := func(qualifiedName string) bool {
		return base.Excluded(qualifiedName) || head.Excluded(qualifiedName)
	}
	return Tree(base.Roots(), head.Roots(), excluded)
}
