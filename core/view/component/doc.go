// Package component is a view engine over compiled templ components.
//
// Components are registered by the full template name the view passes,
// extension included:
//
//	v, err := view.New(view.WithEngineFactory(view.ComponentEngine(map[string]component.Func{
//		"home.html": func(data map[string]any) templ.Component {
//			return pages.Home(data["user"].(string))
//		},
//	})))
//
// Roots are ignored: there is nothing to load from disk.
package component
