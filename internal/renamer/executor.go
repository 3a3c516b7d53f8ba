package renamer

import (
	"os"
	"path/filepath"

	"github.com/zenrename/zenrename/internal/types"
)

// Apply renames one file inside dir and reports the outcome. Equal names
// are a skip without any filesystem call, so re-running over an already
// renamed directory touches nothing. A failed rename is reported on the
// operation and never stops the caller's loop.
func Apply(dir, oldName, newName string) types.RenameOperation {
	op := types.RenameOperation{
		SourcePath: filepath.Join(dir, oldName),
		TargetPath: filepath.Join(dir, newName),
	}

	if oldName == newName {
		op.Status = types.StatusSkipped
		op.Reason = "already named correctly"
		return op
	}

	if err := os.Rename(op.SourcePath, op.TargetPath); err != nil {
		op.Status = types.StatusFailed
		op.Reason = err.Error()
		return op
	}

	op.Status = types.StatusSuccess
	return op
}
