package cli

import "github.com/packmeta-labs/packmeta/internal/manifest"

// The *View types are the printable shape of a normalized manifest. They
// exist so the output can carry a kind discriminator per module and
// dependency without teaching the domain model about rendering. This is a
// display form, not the manifest.json wire format.

type manifestView struct {
	FormatVersion int              `json:"format_version" yaml:"format_version"`
	Header        headerView       `json:"header" yaml:"header"`
	Modules       []moduleView     `json:"modules" yaml:"modules"`
	Dependencies  []dependencyView `json:"dependencies" yaml:"dependencies"`
	Capabilities  []capabilityView `json:"capabilities" yaml:"capabilities"`
	Subpacks      []subpackView    `json:"subpacks" yaml:"subpacks"`
}

type headerView struct {
	UUID             string `json:"uuid" yaml:"uuid"`
	Name             string `json:"name" yaml:"name"`
	Description      string `json:"description" yaml:"description"`
	MinEngineVersion string `json:"min_engine_version" yaml:"min_engine_version"`
	Version          string `json:"version" yaml:"version"`
}

type moduleView struct {
	Kind    string `json:"kind" yaml:"kind"`
	UUID    string `json:"uuid" yaml:"uuid"`
	Version string `json:"version" yaml:"version"`
	Entry   string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

type dependencyView struct {
	Kind    string `json:"kind" yaml:"kind"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	UUID    string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Custom  bool   `json:"custom,omitempty" yaml:"custom,omitempty"`
	Version string `json:"version" yaml:"version"`
}

type capabilityView struct {
	Name   string `json:"name" yaml:"name"`
	Custom bool   `json:"custom,omitempty" yaml:"custom,omitempty"`
}

type subpackView struct {
	FolderName string `json:"folder_name" yaml:"folder_name"`
	Name       string `json:"name" yaml:"name"`
	MemoryTier int    `json:"memory_tier" yaml:"memory_tier"`
}

func newManifestView(m *manifest.Manifest) manifestView {
	view := manifestView{
		FormatVersion: m.FormatVersion,
		Header: headerView{
			UUID:             m.Header.UUID.String(),
			Name:             m.Header.Name,
			Description:      m.Header.Description,
			MinEngineVersion: m.Header.MinEngineVersion.String(),
			Version:          m.Header.Version.String(),
		},
		Modules:      make([]moduleView, 0, len(m.Modules)),
		Dependencies: make([]dependencyView, 0, len(m.Dependencies)),
		Capabilities: make([]capabilityView, 0, len(m.Capabilities)),
		Subpacks:     make([]subpackView, 0, len(m.Subpacks)),
	}

	for _, mod := range m.Modules {
		view.Modules = append(view.Modules, newModuleView(mod))
	}
	for _, dep := range m.Dependencies {
		view.Dependencies = append(view.Dependencies, newDependencyView(dep))
	}
	for _, c := range m.Capabilities {
		view.Capabilities = append(view.Capabilities, capabilityView{Name: c.String(), Custom: c.IsCustom()})
	}
	for _, sp := range m.Subpacks {
		view.Subpacks = append(view.Subpacks, subpackView{FolderName: sp.FolderName, Name: sp.Name, MemoryTier: sp.MemoryTier})
	}

	return view
}

func newModuleView(m manifest.Module) moduleView {
	switch mod := m.(type) {
	case manifest.ScriptModule:
		return moduleView{Kind: "script", UUID: mod.UUID.String(), Version: mod.Version.String(), Entry: mod.Entry}
	case manifest.DataModule:
		return moduleView{Kind: "data", UUID: mod.UUID.String(), Version: mod.Version.String()}
	case manifest.ResourcesModule:
		return moduleView{Kind: "resources", UUID: mod.UUID.String(), Version: mod.Version.String()}
	default:
		return moduleView{Kind: "unknown"}
	}
}

func newDependencyView(d manifest.Dependency) dependencyView {
	switch dep := d.(type) {
	case manifest.ScriptDependency:
		return dependencyView{Kind: "script", Name: dep.Name.String(), Custom: dep.Name.IsCustom(), Version: dep.Version.String()}
	case manifest.UUIDDependency:
		return dependencyView{Kind: "uuid", UUID: dep.UUID.String(), Version: dep.Version.String()}
	default:
		return dependencyView{Kind: "unknown"}
	}
}
