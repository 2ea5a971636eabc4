// Package driven declares the infrastructure the core calls out to.
//
// RepositorySearcher (the GitHub client) and ConfigStore are always
// wired. URLOpener and Clipboard may be nil on headless systems; the
// action service then reports the action as unavailable.
//
// Implementations may import domain and this package, never core/services.
package driven
