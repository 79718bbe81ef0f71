package catalog

type resolutionKind int

const (
	// resolveUnset leaves the header for the empty-placeholder back-fill.
	resolveUnset resolutionKind = iota
	// resolveLiteral stores the value verbatim, no backend involved.
	resolveLiteral
	// resolveMetricKey composes prefix.key.suffix and resolves via the backend.
	resolveMetricKey
)

type resolution struct {
	kind    resolutionKind
	literal Value
	key     string
}

// resolveHeader decides how one header's cell is produced, as a strict
// priority chain: explicit assignment, then schema default key, then unset.
// Classification is applied before any metric-name composition, so
// categorical and meta-info headers are always literal.
func resolveHeader(spec Spec, header string) resolution {
	value, ok := resolveValue(spec, header)
	if !ok {
		return resolution{kind: resolveUnset}
	}
	if IsCategorical(header) || IsMetaInfo(header) {
		return resolution{kind: resolveLiteral, literal: TextValue(value)}
	}
	return resolution{kind: resolveMetricKey, key: value}
}

// resolveValue yields the raw configured value for a header: for categorical
// and meta headers that is the cell content, for measurable headers the
// metric-name key. An explicit null shadows the default key and reports unset.
func resolveValue(spec Spec, header string) (string, bool) {
	if a, ok := spec.Assignments[header]; ok {
		if a.Null {
			return "", false
		}
		return a.Value, true
	}
	if key, ok := DefaultMetricKey(header); ok {
		return key, true
	}
	return "", false
}
