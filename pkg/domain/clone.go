package domain

// Clone returns a deep copy of the schema. Stores hand out clones so that
// concurrent readers never share mutable state with writers.
func (s *FormSchema) Clone() *FormSchema {
	if s == nil {
		return nil
	}
	out := *s
	out.FormConfig = *s.FormConfig.Clone()
	out.Tags = append([]string(nil), s.Tags...)
	return &out
}

// Clone returns a deep copy of the form configuration.
func (c *FormConfig) Clone() *FormConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.Fields != nil {
		out.Fields = make([]FormField, len(c.Fields))
		for i := range c.Fields {
			out.Fields[i] = *c.Fields[i].clone()
		}
	}
	if c.CrossFieldValidations != nil {
		out.CrossFieldValidations = make([]CrossFieldValidation, len(c.CrossFieldValidations))
		for i, cv := range c.CrossFieldValidations {
			cv.Fields = append([]string(nil), cv.Fields...)
			out.CrossFieldValidations[i] = cv
		}
	}
	return &out
}

func (f *FormField) clone() *FormField {
	out := *f
	if f.Validations != nil {
		out.Validations = make([]ValidationRule, len(f.Validations))
		for i, r := range f.Validations {
			r.Value.List = append([]string(nil), r.Value.List...)
			if len(r.Value.List) == 0 {
				r.Value.List = nil
			}
			out.Validations[i] = r
		}
	}
	out.Options = append([]SelectOption(nil), f.Options...)
	if f.Attributes != nil {
		out.Attributes = make(map[string]any, len(f.Attributes))
		for k, v := range f.Attributes {
			out.Attributes[k] = v
		}
	}
	if f.Conditions != nil {
		out.Conditions = make([]FieldCondition, len(f.Conditions))
		for i, c := range f.Conditions {
			c.Values = append([]any(nil), c.Values...)
			out.Conditions[i] = c
		}
	}
	return &out
}
