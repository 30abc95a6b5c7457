package logging

// Field name constants for structured logging, so call sites stay consistent.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldCheck = "check"

	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldUnsafe = "unsafe"
	FieldJobs   = "jobs"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFindingsTotal   = "findings_total"
	FieldFilesFixed      = "files_fixed"

	FieldSeverity    = "severity"
	FieldFixable     = "fixable"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldStability   = "stability"
	FieldProvider    = "provider"
	FieldConfig      = "config"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
