package changeset

import (
	"fmt"
	"strings"

	"github.com/vvka-141/sfdelta/internal/classifier"
	"github.com/vvka-141/sfdelta/pkg/sfdelta"
)

// Classifier maps one changed path to its type and members.
// *classifier.Classifier satisfies it.
type Classifier interface {
	Classify(path, diff string, hasDiff bool) (classifier.Classification, error)
}

// Aggregator folds classified paths into a ChangeSet.
type Aggregator struct {
	classifier Classifier
	logger     sfdelta.Logger
}

// NewAggregator creates an Aggregator using c for per-path classification.
func NewAggregator(c Classifier, logger sfdelta.Logger) *Aggregator {
	return &Aggregator{classifier: c, logger: logger}
}

// Aggregate classifies every path and returns a fresh ChangeSet.
// diffs holds the diff text per path; a path missing from diffs is
// classified without one, which lists every member of in-file types.
// Blank paths are skipped. The result does not depend on path order.
func (a *Aggregator) Aggregate(paths []string, diffs map[string]string) (*ChangeSet, error) {
	cs := New()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		diff, hasDiff := diffs[p]
		result, err := a.classifier.Classify(p, diff, hasDiff)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %s: %w", p, err)
		}
		if result.IsZero() {
			continue
		}
		cs.Add(result.Type, result.Members...)
	}

	a.logger.Verbose("aggregated %d paths into %d types", len(paths), cs.Len())
	return cs, nil
}

// AggregateFiles is Aggregate over change-source results. Deleted files are
// skipped since they cannot be deployed.
func (a *Aggregator) AggregateFiles(files []sfdelta.ChangedFile) (*ChangeSet, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if f.Deleted {
			a.logger.Verbose("skipping deleted file: %s", f.Path)
			continue
		}
		paths = append(paths, f.Path)
	}
	return a.Aggregate(paths, sfdelta.DiffIndex(files))
}
