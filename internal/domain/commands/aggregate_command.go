package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
	infraRepos "github.com/rios0rios0/corrigir/internal/infrastructure/repositories"
)

// Aggregate is the interface for turning a repository into one text document.
type Aggregate interface {
	Execute(ctx context.Context, repoURL string) (*entities.AggregatedDocument, error)
}

// AggregateCommand walks a hosted repository and concatenates its source files:
// parse URL -> pick source host -> list -> filter -> cap file count -> fetch sequentially -> truncate.
type AggregateCommand struct {
	sourceHosts *infraRepos.SourceHostRegistry
	filter      entities.PathFilter
	maxFiles    int
	maxChars    int
}

// NewAggregateCommand creates a new AggregateCommand bounded by the aggregation settings.
func NewAggregateCommand(
	sourceHosts *infraRepos.SourceHostRegistry,
	filter entities.PathFilter,
	settings *entities.Settings,
) *AggregateCommand {
	return &AggregateCommand{
		sourceHosts: sourceHosts,
		filter:      filter,
		maxFiles:    settings.Aggregation.MaxFiles,
		maxChars:    settings.Aggregation.MaxChars,
	}
}

// Execute fails with entities.ErrInvalidReference before any network call when the
// URL names no supported host; any source-host failure aborts the whole aggregation.
func (it *AggregateCommand) Execute(
	ctx context.Context,
	repoURL string,
) (*entities.AggregatedDocument, error) {
	ref, err := entities.ParseRepositoryURL(repoURL)
	if err != nil {
		return nil, err
	}

	host, err := it.sourceHosts.Get(ref.Kind)
	if err != nil {
		return nil, err
	}

	ref, err = host.ResolveReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	logger.Infof("Aggregating %s at branch %q", ref, ref.Branch)

	files, err := host.ListFiles(ctx, ref, it.filter)
	if err != nil {
		return nil, err
	}

	selected := files
	if it.maxFiles > 0 && len(selected) > it.maxFiles {
		logger.Infof("Keeping the first %d of %d files of %s", it.maxFiles, len(files), ref)
		selected = selected[:it.maxFiles]
	}

	document := entities.NewAggregatedDocument(ref, it.maxChars)
	for _, file := range selected {
		content, fetchErr := host.GetFileContent(ctx, ref, file.Path)
		if fetchErr != nil {
			return nil, fetchErr
		}
		document.Append(file.Path, content)
	}

	if document.Truncated() {
		logger.Infof("Aggregated document of %s truncated to %d characters", ref, it.maxChars)
	}
	logger.Infof("Aggregated %d files of %s", len(document.Entries), ref)

	return document, nil
}
