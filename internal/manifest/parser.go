package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// The raw* types mirror the wire shapes of manifest.json before
// normalization. They exist only for the duration of a Parse call.

type rawManifest struct {
	FormatVersion int             `json:"format_version"`
	Header        rawHeader       `json:"header"`
	Modules       []rawModule     `json:"modules"`
	Dependencies  []rawDependency `json:"dependencies"`
	Capabilities  []string        `json:"capabilities"`
	Subpacks      []Subpack       `json:"subpacks"`
}

type rawHeader struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	MinEngineVersion rawVersion `json:"min_engine_version"`
	UUID             string     `json:"uuid"`
	Version          rawVersion `json:"version"`
}

type rawModule struct {
	Type        string  `json:"type"`
	UUID        string  `json:"uuid"`
	Version     []int   `json:"version"`
	Language    string  `json:"language"`
	Entry       *string `json:"entry"`
	Description string  `json:"description"`
}

type rawDependency struct {
	UUID       *string    `json:"uuid"`
	ModuleName *string    `json:"module_name"`
	Version    rawVersion `json:"version"`
}

// versionShape tags which of the two wire encodings a version field used.
type versionShape int

const (
	versionAbsent versionShape = iota
	versionText
	versionTriple
)

// rawVersion is the tagged union for version fields that the wire format
// encodes either as a dotted string or as an integer array. The encoding is
// detected per occurrence, not per document.
type rawVersion struct {
	shape  versionShape
	text   string
	triple []int
}

func (v *rawVersion) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(data, &v.text); err != nil {
			return err
		}
		v.shape = versionText
	case '[':
		if err := json.Unmarshal(data, &v.triple); err != nil {
			return err
		}
		v.shape = versionTriple
	default:
		return fmt.Errorf("version must be a string or an array of integers")
	}
	return nil
}

// resolve dispatches the raw encoding to the matching parser.
func (v rawVersion) resolve() (Version, error) {
	switch v.shape {
	case versionText:
		return ParseVersion(v.text)
	case versionTriple:
		return VersionFromTriple(v.triple)
	default:
		return Version{}, decodeErr(KindMissingField, "", "version is absent")
	}
}

// resolveLenient implements the dependency-version policy: a missing or
// unusable version falls back to 1.0.0 instead of failing the decode.
func (v rawVersion) resolveLenient() Version {
	ver, err := v.resolve()
	if err != nil {
		return fallbackVersion
	}
	return ver
}

// Parse decodes a manifest.json document and normalizes it into a Manifest.
// It returns a *DecodeError locating the offending field when the document
// is structurally malformed, a UUID does not parse, a header or module
// version is unusable, or a record lacks a field its variant requires.
// On error no partial Manifest is returned.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, structuralError(err)
	}

	header, err := normalizeHeader(raw.Header)
	if err != nil {
		return nil, err
	}

	modules, err := normalizeModules(raw.Modules)
	if err != nil {
		return nil, err
	}

	deps, err := normalizeDependencies(raw.Dependencies)
	if err != nil {
		return nil, err
	}

	caps := make([]Capability, 0, len(raw.Capabilities))
	for _, c := range raw.Capabilities {
		caps = append(caps, resolveCapability(c))
	}

	return &Manifest{
		FormatVersion: raw.FormatVersion,
		Header:        header,
		Modules:       modules,
		Dependencies:  deps,
		Capabilities:  caps,
		Subpacks:      raw.Subpacks,
	}, nil
}

// ParseFile reads a manifest file and parses it.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

func normalizeHeader(raw rawHeader) (Header, error) {
	id, err := uuid.Parse(raw.UUID)
	if err != nil {
		return Header{}, &DecodeError{Kind: KindMalformedIdentifier, Path: "header/uuid", Err: err}
	}

	minEngine, err := raw.MinEngineVersion.resolve()
	if err != nil {
		return Header{}, withPath(err, "header/min_engine_version")
	}

	ver, err := raw.Version.resolve()
	if err != nil {
		return Header{}, withPath(err, "header/version")
	}

	return Header{
		UUID:             id,
		Name:             raw.Name,
		Description:      raw.Description,
		MinEngineVersion: minEngine,
		Version:          ver,
	}, nil
}

func normalizeModules(raws []rawModule) ([]Module, error) {
	var modules []Module
	for i, m := range raws {
		path := fmt.Sprintf("modules/%d", i)
		switch m.Type {
		case "script":
			id, ver, err := moduleIdentity(m, path)
			if err != nil {
				return nil, err
			}
			if m.Entry == nil {
				return nil, decodeErr(KindMissingField, path+"/entry",
					"script module requires an entry point")
			}
			modules = append(modules, ScriptModule{UUID: id, Version: ver, Entry: *m.Entry})
		case "data", "resources":
			// Both wire strings collapse into DataModule. Long-standing
			// behavior; callers that must tell the two apart need a schema
			// change first.
			id, ver, err := moduleIdentity(m, path)
			if err != nil {
				return nil, err
			}
			modules = append(modules, DataModule{UUID: id, Version: ver})
		default:
			// Unknown module kinds are dropped, not reported, so manifests
			// from newer schema revisions keep decoding.
		}
	}
	return modules, nil
}

// moduleIdentity parses the uuid and version shared by every module kind.
func moduleIdentity(m rawModule, path string) (uuid.UUID, Version, error) {
	id, err := uuid.Parse(m.UUID)
	if err != nil {
		return uuid.UUID{}, Version{}, &DecodeError{Kind: KindMalformedIdentifier, Path: path + "/uuid", Err: err}
	}
	ver, err := VersionFromTriple(m.Version)
	if err != nil {
		return uuid.UUID{}, Version{}, withPath(err, path+"/version")
	}
	return id, ver, nil
}

func normalizeDependencies(raws []rawDependency) ([]Dependency, error) {
	var deps []Dependency
	for i, d := range raws {
		path := fmt.Sprintf("dependencies/%d", i)
		ver := d.Version.resolveLenient()
		switch {
		case d.ModuleName != nil:
			// module_name wins when both reference styles are present.
			deps = append(deps, ScriptDependency{Name: resolveScriptAPI(*d.ModuleName), Version: ver})
		case d.UUID != nil:
			id, err := uuid.Parse(*d.UUID)
			if err != nil {
				return nil, &DecodeError{Kind: KindMalformedIdentifier, Path: path + "/uuid", Err: err}
			}
			deps = append(deps, UUIDDependency{UUID: id, Version: ver})
		default:
			return nil, decodeErr(KindMissingField, path,
				"dependency needs a module_name or a uuid")
		}
	}
	return deps, nil
}

// structuralError wraps an encoding/json failure, pulling a field path out
// of type errors where one is available.
func structuralError(err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &DecodeError{Kind: KindStructural, Path: typeErr.Field, Err: err}
	}
	return &DecodeError{Kind: KindStructural, Err: err}
}
