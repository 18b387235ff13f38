package manifest

import "github.com/google/uuid"

// Manifest is the normalized form of an addon manifest document. All nested
// slices preserve the order of appearance in the source; nothing is
// deduplicated or reordered.
type Manifest struct {
	FormatVersion int
	Header        Header
	Modules       []Module
	Dependencies  []Dependency
	Capabilities  []Capability
	Subpacks      []Subpack
}

// Header carries the addon's identity and version information.
type Header struct {
	UUID             uuid.UUID
	Name             string
	Description      string
	MinEngineVersion Version
	Version          Version
}

// Module is one constituent bundle of an addon. The concrete types are
// DataModule, ResourcesModule, and ScriptModule; records with an
// unrecognized type string are dropped during normalization so newer
// manifest schemas keep decoding.
type Module interface {
	isModule()
}

// DataModule is a behavior-pack data bundle. Raw records typed "resources"
// also normalize to this variant (see Parse).
type DataModule struct {
	UUID    uuid.UUID
	Version Version
}

// ResourcesModule is a resource-pack bundle. Declared for completeness of
// the model; the normalizer currently folds "resources" records into
// DataModule.
type ResourcesModule struct {
	UUID    uuid.UUID
	Version Version
}

// ScriptModule is a script bundle with its entry point file.
type ScriptModule struct {
	UUID    uuid.UUID
	Version Version
	Entry   string
}

func (DataModule) isModule()      {}
func (ResourcesModule) isModule() {}
func (ScriptModule) isModule()    {}

// Dependency references another package the addon requires, either by a
// symbolic script API name or by UUID. The concrete types are
// ScriptDependency and UUIDDependency.
type Dependency interface {
	isDependency()
}

// ScriptDependency references a script API module by name.
type ScriptDependency struct {
	Name    ScriptAPIName
	Version Version
}

// UUIDDependency references another installed package by identity.
type UUIDDependency struct {
	UUID    uuid.UUID
	Version Version
}

func (ScriptDependency) isDependency() {}
func (UUIDDependency) isDependency()   {}

// ScriptAPIName identifies a script API module. The first-party names are
// the package-level values below; any other name is carried verbatim as a
// custom value. Values are comparable with ==.
type ScriptAPIName struct {
	name   string
	custom bool
}

// Known first-party script API names.
var (
	ScriptAPIServer         = ScriptAPIName{name: "@minecraft/server"}
	ScriptAPIServerUI       = ScriptAPIName{name: "@minecraft/server-ui"}
	ScriptAPIServerNet      = ScriptAPIName{name: "@minecraft/server-net"}
	ScriptAPIServerGametest = ScriptAPIName{name: "@minecraft/server-gametest"}
	ScriptAPIServerAdmin    = ScriptAPIName{name: "@minecraft/server-admin"}
	ScriptAPIServerEditor   = ScriptAPIName{name: "@minecraft/server-editor"}
	ScriptAPIDebugUtilities = ScriptAPIName{name: "@minecraft/debug-utilities"}
)

// CustomScriptAPI wraps a module name outside the first-party set.
func CustomScriptAPI(name string) ScriptAPIName {
	return ScriptAPIName{name: name, custom: true}
}

// String returns the wire name, e.g. "@minecraft/server".
func (n ScriptAPIName) String() string { return n.name }

// IsCustom reports whether the name is outside the first-party set.
func (n ScriptAPIName) IsCustom() bool { return n.custom }

// scriptAPINames maps wire names to their known values. Read-only after
// initialization, safe for concurrent lookups.
var scriptAPINames = map[string]ScriptAPIName{
	"@minecraft/server":          ScriptAPIServer,
	"@minecraft/server-ui":       ScriptAPIServerUI,
	"@minecraft/server-net":      ScriptAPIServerNet,
	"@minecraft/server-gametest": ScriptAPIServerGametest,
	"@minecraft/server-admin":    ScriptAPIServerAdmin,
	"@minecraft/server-editor":   ScriptAPIServerEditor,
	"@minecraft/debug-utilities": ScriptAPIDebugUtilities,
}

// resolveScriptAPI looks a raw module name up in the first-party table,
// falling back to a custom value. Matching is exact and case-sensitive.
func resolveScriptAPI(name string) ScriptAPIName {
	if known, ok := scriptAPINames[name]; ok {
		return known
	}
	return CustomScriptAPI(name)
}

// Capability is an optional engine feature flag requested by the addon.
// Known flags are the package-level values below; unknown strings are
// carried as custom values. Values are comparable with ==.
type Capability struct {
	name   string
	custom bool
}

// Known engine capability flags, keyed by their wire strings.
var (
	CapabilityChemistry            = Capability{name: "chemistry"}
	CapabilityEditorExtension      = Capability{name: "editorExtension"}
	CapabilityExperimentalCustomUI = Capability{name: "experimental_custom_ui"}
	CapabilityPBR                  = Capability{name: "pbr"}
	CapabilityScriptEval           = Capability{name: "script_eval"}
	CapabilityRaytraced            = Capability{name: "raytraced"}
)

// CustomCapability wraps a capability string outside the known set.
func CustomCapability(name string) Capability {
	return Capability{name: name, custom: true}
}

// String returns the wire string, e.g. "raytraced".
func (c Capability) String() string { return c.name }

// IsCustom reports whether the capability is outside the known set.
func (c Capability) IsCustom() bool { return c.custom }

// capabilities maps wire strings to their known values. Read-only after
// initialization, safe for concurrent lookups.
var capabilities = map[string]Capability{
	"chemistry":              CapabilityChemistry,
	"editorExtension":        CapabilityEditorExtension,
	"experimental_custom_ui": CapabilityExperimentalCustomUI,
	"pbr":                    CapabilityPBR,
	"script_eval":            CapabilityScriptEval,
	"raytraced":              CapabilityRaytraced,
}

// resolveCapability looks a raw capability string up in the known table,
// falling back to a custom value. Matching is exact and case-sensitive.
func resolveCapability(name string) Capability {
	if known, ok := capabilities[name]; ok {
		return known
	}
	return CustomCapability(name)
}

// Subpack is a named sub-folder grouping with an associated memory tier.
// It is passed through from the document unchanged, so the wire tags live
// directly on the normalized type.
type Subpack struct {
	FolderName string `json:"folder_name"`
	Name       string `json:"name"`
	MemoryTier int    `json:"memory_tier"`
}
