package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/types"
)

// PlacementRule sends element kinds matching Match to the package that
// plays Role. Match is an exact kind, a prefix ("APPLICATION-*"), a suffix
// ("*-INTERFACE") or "*".
type PlacementRule struct {
	Match string
	Role  types.PackageRole
}

// DefaultPlacementRules places every modeled package element.
func DefaultPlacementRules() []PlacementRule {
	return []PlacementRule{
		{Match: string(types.KindSwBaseType), Role: types.RoleBaseType},
		{Match: string(types.KindCompuMethod), Role: types.RoleCompuMethod},
		{Match: string(types.KindDataConstraint), Role: types.RoleDataConstraint},
		{Match: string(types.KindUnit), Role: types.RoleUnit},
		{Match: string(types.KindImplementationDataType), Role: types.RoleImplementationDataType},
		{Match: "APPLICATION-*-DATA-TYPE", Role: types.RoleApplicationDataType},
		{Match: string(types.KindDataTypeMappingSet), Role: types.RoleDataTypeMappingSet},
		{Match: string(types.KindConstantSpecification), Role: types.RoleConstant},
		{Match: string(types.KindModeDeclarationGroup), Role: types.RoleModeDeclaration},
		{Match: "*-INTERFACE", Role: types.RolePortInterface},
		{Match: "*-SW-COMPONENT-TYPE", Role: types.RoleComponentType},
	}
}

// PlacementPolicy maps element kinds to namespace roles. The first rule in
// declaration order that matches wins.
type PlacementPolicy struct {
	Rules    []PlacementRule
	exact    map[types.IdentifiableKind]int
	patterns []compiledPattern
	wildcard int
}

type compiledPattern struct {
	prefix    string
	suffix    string
	ruleIndex int
}

// NewPlacementPolicy compiles rules. Overrides are consulted before the
// defaults, so callers can reroute single kinds.
func NewPlacementPolicy(overrides ...PlacementRule) PlacementPolicy {
	policy := PlacementPolicy{wildcard: -1}
	policy.Rules = append(policy.Rules, overrides...)
	policy.Rules = append(policy.Rules, DefaultPlacementRules()...)
	policy.compile()
	return policy
}

func (p PlacementPolicy) RoleFor(kind types.IdentifiableKind) (types.PackageRole, error) {
	best := -1
	if idx, found := p.exact[kind]; found {
		best = minIndex(best, idx)
	}
	text := string(kind)
	for _, pattern := range p.patterns {
		if len(text) >= len(pattern.prefix)+len(pattern.suffix) &&
			strings.HasPrefix(text, pattern.prefix) &&
			strings.HasSuffix(text, pattern.suffix) {
			best = minIndex(best, pattern.ruleIndex)
		}
	}
	best = minIndex(best, p.wildcard)
	if best >= 0 && best < len(p.Rules) {
		return p.Rules[best].Role, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no package role is configured for %s", kind))
}

func (p *PlacementPolicy) compile() {
	p.exact = map[types.IdentifiableKind]int{}
	p.patterns = nil
	p.wildcard = -1
	for idx, rule := range p.Rules {
		match := strings.TrimSpace(rule.Match)
		switch {
		case match == "":
			continue
		case match == "*":
			if p.wildcard < 0 {
				p.wildcard = idx
			}
		case strings.Contains(match, "*"):
			prefix, suffix, _ := strings.Cut(match, "*")
			p.patterns = append(p.patterns, compiledPattern{prefix: prefix, suffix: suffix, ruleIndex: idx})
		default:
			kind := types.IdentifiableKind(match)
			if _, ok := p.exact[kind]; !ok {
				p.exact[kind] = idx
			}
		}
	}
}

func minIndex(current int, candidate int) int {
	if candidate < 0 {
		return current
	}
	if current < 0 || candidate < current {
		return candidate
	}
	return current
}

var _ ports.PlacementPort = PlacementPolicy{}
