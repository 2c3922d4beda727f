package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/bamacgabhann/county-competitions/models"
)

// runInTx executes fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// sortByRank orders teams by league rank ascending, unranked teams
// last. Rank order is the display order for every table view.
func sortByRank(teams []*models.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		ri, rj := teams[i].LeagueRank, teams[j].LeagueRank
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri < *rj
		}
	})
}
