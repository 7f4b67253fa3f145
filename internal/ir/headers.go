package ir

import "strings"

// Header names read and written by the embedder.
const (
	HeaderEmbedDependency   = "Embed-Dependency"
	HeaderEmbedDirectory    = "Embed-Directory"
	HeaderEmbedStripGroup   = "Embed-StripGroup"
	HeaderEmbedStripVersion = "Embed-StripVersion"
	HeaderBundleClassPath   = "Bundle-ClassPath"
	HeaderIncludeResource   = "Include-Resource"
)

// HeaderDelimiter separates entries within a header value.
const HeaderDelimiter = ","

// Headers holds the two header values produced by an embedding pass.
type Headers struct {
	BundleClassPath string `json:"bundle_classpath" yaml:"bundle_classpath"`
	IncludeResource string `json:"include_resource" yaml:"include_resource"`
}

// Properties is the bundle instruction surface keyed by header name.
type Properties map[string]string

// Get returns the trimmed value for name, or "" when absent.
func (p Properties) Get(name string) string {
	return strings.TrimSpace(p[name])
}

// GetOr returns the value for name, or def when name is absent.
// A present but empty value is returned as is.
func (p Properties) GetOr(name, def string) string {
	if v, ok := p[name]; ok {
		return strings.TrimSpace(v)
	}
	return def
}

// Headers extracts the current Bundle-ClassPath and Include-Resource values.
func (p Properties) Headers() Headers {
	return Headers{
		BundleClassPath: p[HeaderBundleClassPath],
		IncludeResource: p[HeaderIncludeResource],
	}
}

// Apply writes non-empty header values back into p.
func (p Properties) Apply(h Headers) {
	if h.BundleClassPath != "" {
		p[HeaderBundleClassPath] = h.BundleClassPath
	}
	if h.IncludeResource != "" {
		p[HeaderIncludeResource] = h.IncludeResource
	}
}

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
