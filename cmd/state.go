package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinkeet/watershed/internal/mastery"
	"github.com/kevinkeet/watershed/internal/progress"
	"github.com/kevinkeet/watershed/internal/store"
	"github.com/spf13/cobra"
)

// snapshotsToKeep bounds snapshot history growth.
const snapshotsToKeep = 20

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadState builds the progress and mastery services from the latest snapshot.
func loadState(ctx context.Context, st *store.Store) (*progress.Service, *mastery.Service, error) {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	eventRepo := st.EventRepo()
	return progress.NewService(data, eventRepo), mastery.NewService(data, eventRepo), nil
}

// saveState captures the services into a new snapshot and prunes old ones.
func saveState(ctx context.Context, st *store.Store, prog *progress.Service, masterySvc *mastery.Service) error {
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:  1,
			Progress: prog.SnapshotData(),
			Mastery:  masterySvc.SnapshotData(),
		},
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := st.SnapshotRepo().Prune(ctx, snapshotsToKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
