package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/store"
	"github.com/spf13/cobra"
)

var noticesCmd = &cobra.Command{
	Use:   "notices",
	Short: "Manage dismissed promotion notices",
	RunE:  runNoticesList,
}

var noticesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dismissed notices",
	Args:  cobra.NoArgs,
	RunE:  runNoticesList,
}

var noticesDismissCmd = &cobra.Command{
	Use:   "dismiss <code>...",
	Short: "Hide promotion notices by code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoticesDismiss,
}

var noticesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Show every notice again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		notices, err := openNotices()
		if err != nil {
			return err
		}
		return notices.Reset()
	},
}

func init() {
	noticesCmd.AddCommand(noticesListCmd, noticesDismissCmd, noticesResetCmd)
}

// noticesPath is SHOPCTL_NOTICES or notices.yaml in the user config dir.
func noticesPath() (string, error) {
	if p := config.GetEnv("SHOPCTL_NOTICES", ""); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "shopctl", "notices.yaml"), nil
}

func openNotices() (*store.NoticeStore, error) {
	path, err := noticesPath()
	if err != nil {
		return nil, err
	}
	return store.OpenNoticeStore(path)
}

func runNoticesList(cmd *cobra.Command, args []string) error {
	notices, err := openNotices()
	if err != nil {
		return err
	}
	for _, id := range notices.Dismissed() {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func runNoticesDismiss(cmd *cobra.Command, args []string) error {
	notices, err := openNotices()
	if err != nil {
		return err
	}
	for _, code := range args {
		if err := notices.Dismiss(code); err != nil {
			return err
		}
	}
	return nil
}
