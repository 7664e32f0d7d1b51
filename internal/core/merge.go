package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/policies"
	"autosar-arxml/internal/types"
)

// MergeDocuments folds docs into one new document in order. Packages with
// the same path are combined; duplicate elements follow action. The inputs
// are consumed: their packages and elements move into the result.
func MergeDocuments(ctx context.Context, action string, docs ...*types.Document) (*types.Document, error) {
	if _, err := policies.ParseConflictAction(action); err != nil {
		return nil, err
	}
	merged := types.NewDocument()
	merged.SchemaVersion = 0
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if merged.FileInfo == nil {
			merged.FileInfo = doc.FileInfo
		}
		if merged.AdminData == nil {
			merged.AdminData = doc.AdminData
		}
		if doc.SchemaVersion > merged.SchemaVersion {
			merged.SchemaVersion = doc.SchemaVersion
		}
		if err := mergeInto(merged, doc, action, nil); err != nil {
			return nil, err
		}
	}
	if merged.SchemaVersion == 0 {
		merged.SchemaVersion = types.DefaultSchemaVersion
	}
	log.Ctx(ctx).Debug().
		Int("documents", len(docs)).
		Int("packages", len(merged.Packages)).
		Msg("documents merged")
	return merged, nil
}

// mergeInto moves the content of src into dst. added sees the path of
// every element that ends up in dst. A conflict leaves dst untouched.
func mergeInto(dst *types.Document, src *types.Document, action string, added func(string)) error {
	if _, err := policies.ParseConflictAction(action); err != nil {
		return err
	}
	for _, pkg := range src.Packages {
		if existing := dst.Package(pkg.Name); existing != nil {
			if err := checkPackage(existing, pkg, action); err != nil {
				return err
			}
		}
	}
	if added == nil {
		added = func(string) {}
	}
	incoming := append([]*types.Package(nil), src.Packages...)
	for _, pkg := range incoming {
		existing := dst.Package(pkg.Name)
		if existing == nil {
			if err := dst.Append(pkg); err != nil {
				return err
			}
			reportElements(pkg, added)
			continue
		}
		if err := mergePackage(existing, pkg, action, added); err != nil {
			return err
		}
	}
	return nil
}

func mergePackage(dst *types.Package, src *types.Package, action string, added func(string)) error {
	if dst.Category == "" {
		dst.Category = src.Category
	}
	elements := append([]types.Element(nil), src.Elements...)
	for _, element := range elements {
		switch existing := dst.Child(element.ShortName()).(type) {
		case nil:
			if err := dst.AppendElement(element); err != nil {
				return err
			}
			added(element.Path())
		case *types.Package:
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("%s is both a package and a %s", existing.Path(), element.Kind()))
		default:
			decision, err := policies.ResolveConflict(existing.Path(), action)
			if err != nil {
				return err
			}
			if decision == policies.DecisionKeepExisting {
				continue
			}
			if _, err := dst.ReplaceElement(element); err != nil {
				return err
			}
			added(element.Path())
		}
	}
	packages := append([]*types.Package(nil), src.Packages...)
	for _, sub := range packages {
		switch existing := dst.Child(sub.Name).(type) {
		case nil:
			if err := dst.Append(sub); err != nil {
				return err
			}
			reportElements(sub, added)
		case *types.Package:
			if err := mergePackage(existing, sub, action, added); err != nil {
				return err
			}
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("%s is both a %s and a package", existing.Path(), existing.Kind()))
		}
	}
	return nil
}

// checkPackage runs the decisions of mergePackage without moving anything.
func checkPackage(dst *types.Package, src *types.Package, action string) error {
	for _, element := range src.Elements {
		switch existing := dst.Child(element.ShortName()).(type) {
		case nil:
		case *types.Package:
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("%s is both a package and a %s", existing.Path(), element.Kind()))
		default:
			if _, err := policies.ResolveConflict(existing.Path(), action); err != nil {
				return err
			}
		}
	}
	for _, sub := range src.Packages {
		switch existing := dst.Child(sub.Name).(type) {
		case nil:
		case *types.Package:
			if err := checkPackage(existing, sub, action); err != nil {
				return err
			}
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("%s is both a %s and a package", existing.Path(), existing.Kind()))
		}
	}
	return nil
}

func reportElements(pkg *types.Package, added func(string)) {
	_ = pkg.Walk(func(element types.Element) error {
		added(element.Path())
		return nil
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
