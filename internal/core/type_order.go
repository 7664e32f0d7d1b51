package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/types"
)

// TypeOrder sorts the base and implementation data types among elements so
// that every type comes after the types it refers to. Types that do not
// depend on each other keep their input order. References are resolved
// through finder; a reference to a type outside elements counts as met.
func TypeOrder(ctx context.Context, finder types.PathFinder, elements []types.Element) ([]types.Element, error) {
	var nodes []types.Element
	index := map[types.Element]int{}
	for _, element := range elements {
		switch element.Kind() {
		case types.KindSwBaseType, types.KindImplementationDataType:
			index[element] = len(nodes)
			nodes = append(nodes, element)
		}
	}

	indegree := make([]int, len(nodes))
	dependents := make([][]int, len(nodes))
	for i, node := range nodes {
		seen := map[int]struct{}{}
		for _, ref := range node.References() {
			if !isTypeKind(ref.Dest()) {
				continue
			}
			target, err := types.ResolveReference(finder, ref)
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeOf(err)).
					WithMsg(fmt.Sprintf("%s: cannot order types", node.Path())).
					WithCause(err)
			}
			element, ok := target.(types.Element)
			if !ok {
				continue
			}
			dep, ok := index[element]
			if !ok || dep == i {
				continue
			}
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}
			dependents[dep] = append(dependents[dep], i)
			indegree[i]++
		}
	}

	done := make([]bool, len(nodes))
	ordered := make([]types.Element, 0, len(nodes))
	for len(ordered) < len(nodes) {
		next := -1
		for i := range nodes {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, cycleError(nodes, done)
		}
		done[next] = true
		ordered = append(ordered, nodes[next])
		for _, dependent := range dependents[next] {
			indegree[dependent]--
		}
	}
	log.Ctx(ctx).Debug().Int("types", len(ordered)).Msg("data types ordered")
	return ordered, nil
}

func isTypeKind(kind types.IdentifiableKind) bool {
	return kind == types.KindSwBaseType || kind == types.KindImplementationDataType
}

func cycleError(nodes []types.Element, done []bool) error {
	var stuck []string
	for i, node := range nodes {
		if !done[i] {
			stuck = append(stuck, node.Path())
		}
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("data types form a dependency cycle: %s", strings.Join(stuck, ", ")))
}
