package config

// Template is a starter configuration emitted by `booklint init`.
// It documents the policy knobs and a few commonly tuned checks.
const Template = `# booklint configuration
#
# policy selects the default: "enable-all" runs every check unless excluded;
# "enable-none" runs only checks named under enable / enable-categories.
policy: enable-all

# Whole categories can be switched off, e.g. the mdBook-specific checks for
# repositories that are not books.
# disable-categories:
#   - mdbook

# Explicit per-check switches override category lists.
# enable:
#   - MD013
# disable:
#   - MD033

# Per-check blocks: enabled, severity (error|warning|info), and options.
# Option keys accept hyphen-case or snake_case spellings.
checks:
  MD010:
    options:
      spaces-per-tab: 4
  MD012:
    options:
      max-blank-lines: 1
  MD013:
    severity: info
    options:
      max-length: 100

# Glob patterns the runner skips.
ignore:
  - "node_modules/**"
  - "vendor/**"
`
