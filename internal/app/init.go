package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/core"
	"autosar-arxml/internal/shared"
	"autosar-arxml/internal/types"
)

const generatorName = "autosar-arxml"

// Init writes a skeleton document holding one empty package per role of
// the selected namespace.
func (s Service) Init(ctx context.Context, req InitRequest) (InitResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output file is required")
	}
	if !req.Force {
		if _, err := os.Stat(output); err == nil {
			return InitResult{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("%s already exists; use --force to overwrite", output))
		}
	}

	config := s.NewNamespace()
	if req.Inline != nil {
		if err := config.LoadConfigInline(*req.Inline); err != nil {
			return InitResult{}, err
		}
	}
	for _, path := range req.ConfigFiles {
		if err := config.LoadConfig(path); err != nil {
			return InitResult{}, err
		}
	}

	ws := core.NewWorkspace(s.Placement)
	if err := ws.ApplyNamespaceConfig(ctx, config.Namespaces(), config.DefaultNamespace()); err != nil {
		return InitResult{}, err
	}
	name := strings.TrimSpace(req.Namespace)
	if name == "" {
		name = ws.DefaultNamespace()
	}
	namespace, ok := ws.Namespace(name)
	if !ok {
		return InitResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("namespace %s is not configured", name))
	}

	var packages []string
	for _, role := range types.PackageRoles() {
		if path, ok := namespace.PathFor(role); ok {
			packages = append(packages, path)
		}
	}
	packages = shared.DedupeStrings(packages)
	file := filepath.Base(output)
	if err := ws.CreateDocument(file, packages...); err != nil {
		return InitResult{}, err
	}
	doc, err := ws.DocumentView(file)
	if err != nil {
		return InitResult{}, err
	}
	doc.SchemaVersion = types.DefaultSchemaVersion
	if req.SchemaVersion != 0 {
		catalog, err := core.NewSchemaCatalog(s.Options.SchemaSupport)
		if err != nil {
			return InitResult{}, err
		}
		if err := catalog.Check(req.SchemaVersion); err != nil {
			return InitResult{}, err
		}
		doc.SchemaVersion = req.SchemaVersion
	}
	doc.FileInfo = &types.FileInfo{Sdgs: []types.Sdg{{
		GID: "generator",
		Sds: []types.Sd{
			{GID: "tool", Value: generatorName},
			{GID: "created", Value: s.Clock().UTC().Format("2006-01-02T15:04:05Z")},
			{GID: "namespace", Value: namespace.Name},
		},
	}}}

	if err := s.Files.Save(ctx, output, doc); err != nil {
		return InitResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("file", output).
		Str("namespace", namespace.Name).
		Int("packages", len(packages)).
		Msg("arxml skeleton written")
	return InitResult{Path: output, Namespace: namespace.Name, Packages: packages}, nil
}
