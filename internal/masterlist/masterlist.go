package masterlist

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ordinator-tools/ordinator/internal/metadata"
	"github.com/ordinator-tools/ordinator/internal/metalist"
	"github.com/ordinator-tools/ordinator/internal/vcs"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
)

// Masterlist is a metadata list plus the provenance of the commit it was
// loaded from (spec.md §3).
type Masterlist struct {
	List       *metalist.MetadataList
	RevisionID string
	Date       string
	Branch     string
}

// Load parses path as a masterlist document, tagging any priority values
// it sets as metadata.PriorityDefault.
func Load(path string) (*Masterlist, error) {
	list, err := metalist.Load(path, metadata.PriorityDefault)
	if err != nil {
		return nil, err
	}
	return &Masterlist{List: list}, nil
}

// Update delegates to client to bring dir's checkout up to date on
// branch, then reloads path (expected to live inside dir) as the new
// masterlist. On success the swap is atomic from the caller's
// perspective: Update returns a fully-loaded new Masterlist and
// changed=true when the revision moved, the reloaded existing document
// and changed=false when it did not, or leaves the prior masterlist's
// on-disk files untouched and returns an error (spec.md §5, §7: "VCS failures leave the on-disk
// masterlist untouched").
func Update(ctx context.Context, client vcs.Client, dir, path, repoURL, branch string) (ml *Masterlist, changed bool, err error) {
	before, beforeErr := client.GetRevision(ctx, dir)
	hadBefore := beforeErr == nil

	rev, err := client.Update(ctx, dir, repoURL, branch)
	if err != nil {
		return nil, false, err
	}

	if hadBefore && rev.ID == before.ID {
		existing, err := Load(path)
		if err != nil {
			return nil, false, err
		}
		existing.RevisionID = rev.ID
		existing.Date = rev.Date
		existing.Branch = branch
		return existing, false, nil
	}

	if _, err := os.Stat(filepath.Join(dir, filepath.Base(path))); err != nil {
		return nil, false, ordinatorerrors.NewFileAccess(path, "masterlist document missing after update", ordinatorerrors.WithCause(err))
	}

	list, err := metalist.Load(path, metadata.PriorityDefault)
	if err != nil {
		return nil, false, err
	}

	return &Masterlist{List: list, RevisionID: rev.ID, Date: rev.Date, Branch: branch}, true, nil
}
