// Package app wires configuration, logging, the editing session and the
// script runtime into one Application.
//
// A typical run:
//
//	a, err := app.New(app.Options{ConfigPath: "anchorage.toml"})
//	if err != nil { ... }
//	defer a.Shutdown()
//	if err := a.Open("notes.txt"); err != nil { ... }
//	if err := a.RunString(`ed.insert("hi", 0)`); err != nil { ... }
//	a.WriteTo(os.Stdout)
package app
