// Package scaffold generates YUI library projects and modules from embedded
// templates. It powers the "yuigen project" and "yuigen module" commands.
//
// A module's file set is fixed by its type (css, js or widget); see FileSet.
// Templates use <%= .Field %> placeholders resolved against ModuleData or
// ProjectData, and <%%= for a literal <%= in the output.
package scaffold
