package types

type ModeDeclaration struct {
	Identifiable
	Value *int
}

func (*ModeDeclaration) Kind() IdentifiableKind { return KindModeDeclaration }

type ModeDeclarationGroup struct {
	Identifiable
	Category          string
	InitialModeRef    ModeDeclarationRef
	ModeDeclarations  []*ModeDeclaration
	OnTransitionValue *int
}

func (*ModeDeclarationGroup) Kind() IdentifiableKind { return KindModeDeclarationGroup }

func (g *ModeDeclarationGroup) AppendModeDeclaration(mode *ModeDeclaration) error {
	modes, err := appendChild(g, g.ModeDeclarations, mode)
	g.ModeDeclarations = modes
	return err
}

func (g *ModeDeclarationGroup) linkChildren() {
	for _, mode := range g.ModeDeclarations {
		mode.attach(g)
	}
}

func (g *ModeDeclarationGroup) FindChild(name string) Referrable {
	return findNamed(g.ModeDeclarations, name)
}

func (g *ModeDeclarationGroup) References() []Reference {
	return collectRefs(nil, g.InitialModeRef)
}

// ModeDeclarationGroupPrototype is the MODE-GROUP of a mode switch interface.
type ModeDeclarationGroupPrototype struct {
	Identifiable
	TypeRef ModeDeclarationGroupRef
}

func (*ModeDeclarationGroupPrototype) Kind() IdentifiableKind {
	return KindModeDeclarationGroupPrototype
}
