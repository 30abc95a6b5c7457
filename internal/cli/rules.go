package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/booklint/booklint/internal/logging"
)

const formatJSON = "json"

// checkInfo is one catalogue entry in JSON output.
type checkInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	Category    string `json:"category"`
	Stability   string `json:"stability"`
	Severity    string `json:"severity"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available checks",
		Long: `List every check in the built-in catalogue with its id, provider,
category, stability, default severity, and whether it supports auto-fixing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			registry, err := newRegistry()
			if err != nil {
				return err
			}

			infos := make([]checkInfo, 0)
			for _, id := range registry.CheckIDs() {
				chk, ok := registry.CheckByID(id)
				if !ok {
					continue
				}
				provider, _ := registry.ProviderOf(id)
				meta := chk.Metadata()
				infos = append(infos, checkInfo{
					ID:          chk.ID(),
					Name:        chk.Name(),
					Description: chk.Description(),
					Provider:    provider.ID(),
					Category:    string(meta.Category),
					Stability:   string(meta.Stability),
					Severity:    string(chk.DefaultSeverity()),
					Fixable:     chk.CanFix(),
				})
			}

			if format == formatJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encode checks: %w", err)
				}
				return nil
			}

			logger := logging.NewInteractive()
			logger.Info("available checks")
			for _, info := range infos {
				fixable := "-"
				if info.Fixable {
					fixable = "yes"
				}
				logger.Info(fmt.Sprintf("%s (%s)", info.ID, info.Name),
					logging.FieldProvider, info.Provider,
					logging.FieldCategory, info.Category,
					logging.FieldStability, info.Stability,
					logging.FieldSeverity, info.Severity,
					logging.FieldFixable, fixable,
					logging.FieldDescription, info.Description,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}
