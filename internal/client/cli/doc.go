// Package cli provides the interactive gophauth terminal client.
//
// It wires configuration, the local session database, the auth API client
// and the session controller behind a REPL. The terminal acts as the UI
// surface: commands type into named form fields (so field validation runs
// as it would while typing) and submit forms; the controller decides which
// view is printed.
//
// Commands:
//   - login, register      fill in and submit a form
//   - view login|register  switch forms
//   - profile, status      show the current user and token
//   - logout
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
