package types

// PathFinder resolves absolute paths; Document, Package and the workspace
// satisfy it.
type PathFinder interface {
	Find(path string) Referrable
}

// ResolveReference dereferences ref. A missing target is not-found; a
// target whose kind differs from the DEST is failed-precondition.
func ResolveReference(finder PathFinder, ref Reference) (Referrable, error) {
	if ref == nil || ref.IsZero() {
		return nil, invalidArgument("cannot resolve an empty reference")
	}
	target := finder.Find(ref.Value())
	if target == nil {
		return nil, notFound("unresolved reference %s (DEST=%s)", ref.Value(), ref.Dest())
	}
	if target.Kind() != ref.Dest() {
		return nil, failedPrecondition("reference %s expects %s but names a %s",
			ref.Value(), ref.Dest(), target.Kind())
	}
	return target, nil
}

// UnresolvedReference records a reference that failed to resolve.
type UnresolvedReference struct {
	Owner string
	Ref   Reference
	Err   error
}

// CheckReferences resolves every reference held by the elements.
func CheckReferences(finder PathFinder, elements []Element) []UnresolvedReference {
	var problems []UnresolvedReference
	for _, element := range elements {
		for _, ref := range element.References() {
			if _, err := ResolveReference(finder, ref); err != nil {
				problems = append(problems, UnresolvedReference{Owner: element.Path(), Ref: ref, Err: err})
			}
		}
	}
	return problems
}

// Elements flattens the document in walk order.
func (d *Document) Elements() []Element {
	var elements []Element
	_ = d.Walk(func(element Element) error {
		elements = append(elements, element)
		return nil
	})
	return elements
}
