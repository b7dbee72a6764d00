// Package actions is the catalog of global shortcut actions.
//
// Each Action is a named value holding a chord and an effect, so the
// catalog can be listed, diffed and tested like data. Effects write state
// slices in a fixed order: a sub-view is selected before its container is
// opened, and opening a settings surface closes the command bar. Calls to
// external collaborators (opening a link, signing out) are returned as a
// tea.Cmd and never block key handling.
//
// Effects are not transactional. If a collaborator fails after some slices
// were written, those writes stay; effects are ordered so the least
// reversible step comes last.
package actions
