package docvars

// PreviewVariable is an extracted variable annotated for the preview form:
// internal variables are auto-filled, the rest are prompted for.
type PreviewVariable struct {
	ExtractedVariable
	IsInternal bool   `json:"isInternal"`
	Label      string `json:"label"`
}

// Classify annotates each extracted variable with its resolution source and a
// human label. A variable is internal when the catalog marks it INTERNAL or,
// if not catalogued, when it belongs to the built-in internal key set.
func Classify(extracted []ExtractedVariable, catalog Catalog) []PreviewVariable {
	out := make([]PreviewVariable, 0, len(extracted))
	for _, v := range extracted {
		pv := PreviewVariable{ExtractedVariable: v, Label: v.Label}

		if entry, ok := catalog[v.VariableID]; ok {
			pv.IsInternal = entry.SourceType == SourceTypeInternal
			if pv.Label == "" {
				pv.Label = entry.Label
			}
		} else {
			pv.IsInternal = IsInternalKey(v.VariableID)
		}
		if pv.Label == "" {
			pv.Label = v.VariableID
		}

		out = append(out, pv)
	}
	return out
}

// AutoFillInternal computes values for every internal variable via the
// calculator registry. Each produced value has value == displayValue; unknown
// internal keys produce the empty string.
func AutoFillInternal(variables []PreviewVariable, calc *Calculators) ValueMap {
	if calc == nil {
		calc = NewCalculators(nil)
	}

	out := make(ValueMap)
	for _, v := range variables {
		if !v.IsInternal {
			continue
		}
		computed := calc.Calculate(v.VariableID, formatOf(v.ExtractedVariable))
		out[v.VariableID] = VariableValue{
			VariableID:   v.VariableID,
			Value:        computed,
			DisplayValue: computed,
			Format:       v.Format,
		}
	}
	return out
}

// Missing returns the variables still requiring user input: exactly those
// that are not internal and have no non-empty value yet.
func Missing(variables []PreviewVariable, values ValueMap) []PreviewVariable {
	out := make([]PreviewVariable, 0)
	for _, v := range variables {
		if v.IsInternal {
			continue
		}
		entry, ok := values[v.VariableID]
		if !ok || entry.Value == nil || entry.Value == "" {
			out = append(out, v)
		}
	}
	return out
}
