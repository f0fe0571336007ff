package main

import (
	"fmt"
	"strconv"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Inspect and rearrange the homepage sections",
	Long: `Inspect and rearrange the homepage sections.

Subcommands:
  list    - Show sections in display order
  move    - Move a section from one position to another (1-based)
  toggle  - Enable or disable a section`,
	RunE: runSectionsList,
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show sections in display order",
	Args:  cobra.NoArgs,
	RunE:  runSectionsList,
}

var sectionsMoveCmd = &cobra.Command{
	Use:     "move <from> <to>",
	Short:   "Move a section to a new position",
	Example: "  shopctl sections move 4 1",
	Args:    cobra.ExactArgs(2),
	RunE:    runSectionsMove,
}

var sectionsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionsToggle,
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show what the storefront homepage renders",
	Args:  cobra.NoArgs,
	RunE:  runHome,
}

func init() {
	sectionsCmd.AddCommand(sectionsListCmd, sectionsMoveCmd, sectionsToggleCmd)
}

func loadSections(cmd *cobra.Command) (*store.SectionStore, error) {
	ss := store.NewSectionStore(newClient(), logger, store.OnError(func(err error) {
		logger.Warn("layout change was not saved, reverted", zap.Error(err))
	}))
	if err := ss.Load(cmd.Context()); err != nil {
		ss.Close()
		return nil, err
	}
	return ss, nil
}

func runSectionsList(cmd *cobra.Command, args []string) error {
	ss, err := loadSections(cmd)
	if err != nil {
		return err
	}
	defer ss.Close()
	return renderSections(cmd.OutOrStdout(), ss.Sections(), ss.Fallback())
}

// parsePosition turns a 1-based position argument into an index.
func parsePosition(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q, want a number from 1", raw)
	}
	return n - 1, nil
}

func runSectionsMove(cmd *cobra.Command, args []string) error {
	from, err := parsePosition(args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	ss, err := loadSections(cmd)
	if err != nil {
		return err
	}
	defer ss.Close()
	if ss.Fallback() {
		return fmt.Errorf("API unavailable, the layout cannot be changed offline")
	}

	if err := ss.Move(cmd.Context(), from, to); err != nil {
		return err
	}
	return renderSections(cmd.OutOrStdout(), ss.Sections(), false)
}

func runSectionsToggle(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid section id %q", args[0])
	}

	ss, err := loadSections(cmd)
	if err != nil {
		return err
	}
	defer ss.Close()

	if err := ss.Toggle(cmd.Context(), id); err != nil {
		return err
	}
	return renderSections(cmd.OutOrStdout(), ss.Sections(), ss.Fallback())
}

func runHome(cmd *cobra.Command, args []string) error {
	res, err := newClient().Home(cmd.Context())
	if err != nil {
		return fmt.Errorf("load homepage: %w", err)
	}
	notices, err := openNotices()
	if err != nil {
		return err
	}
	return renderHome(cmd.OutOrStdout(), res.Data, notices, res.Fallback)
}
