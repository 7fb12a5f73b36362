package html

import "github.com/flosch/pongo2/v6"

// Page is the data rendered by the registration template.
type Page struct {
	Action    string
	Fields    []Field
	Outcome   *Banner
	LoadError string
}

// Field is one input or select of the page.
type Field struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Error   string
	Choice  bool
	Options []Choice
}

// Choice is one entry of a select control.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Banner is the outcome message shown above the form.
type Banner struct {
	Kind    string
	Message string
}

func (p Page) context() pongo2.Context {
	fields := make([]map[string]any, 0, len(p.Fields))
	for _, f := range p.Fields {
		opts := make([]map[string]any, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, map[string]any{
				"value":    o.Value,
				"label":    o.Label,
				"selected": o.Selected,
			})
		}
		field := map[string]any{
			"name":    f.Name,
			"label":   f.Label,
			"type":    f.Type,
			"value":   f.Value,
			"error":   f.Error,
			"choice":  f.Choice,
			"options": opts,
		}
		fields = append(fields, field)
	}

	ctx := pongo2.Context{
		"action":     p.Action,
		"fields":     fields,
		"load_error": p.LoadError,
	}
	if p.Outcome != nil {
		ctx["outcome"] = map[string]any{
			"kind":    p.Outcome.Kind,
			"message": p.Outcome.Message,
		}
	}
	return ctx
}
