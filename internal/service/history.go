package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jebin2/hfsync/internal/logging"
)

func (s *Service) History(ctx context.Context, limit int64) error {
	transfers, err := s.db.RecentTransfers(ctx, limit)
	if err != nil {
		logging.Error("Failed to read transfer history", err)
		return err
	}
	for _, t := range transfers {
		fmt.Printf(
			"%s  %-8s  %s",
			t.CreatedAt.Format(time.RFC3339), t.Operation, t.RemotePath,
		)
		if t.LocalPath != "" {
			fmt.Printf("  (%s)", t.LocalPath)
		}
		fmt.Println()
	}
	return nil
}
