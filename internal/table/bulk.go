package table

import (
	"context"
	"log/slog"

	"github.com/mtiwari1/tableloader/internal/worker"
	pb "github.com/mtiwari1/tableloader/proto"
)

// LoadResult is the outcome of loading one file in LoadAll.
type LoadResult = worker.Result

// LoadAll loads every path into tableName using a bounded pool of workers.
// Results come back in the order of paths. A failed file does not stop the
// others; each result carries its own error.
func LoadAll(ctx context.Context, tableName string, paths []string, c Client, workers int, logger *slog.Logger) []LoadResult {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("table", tableName))

	pool := worker.NewPool(workers, func(ctx context.Context, tableName, path string) (*pb.LoadDataResponse, error) {
		return Load(ctx, tableName, path, c)
	}, logger)
	pool.Start()

	go func() {
		defer pool.Shutdown()
		for i, path := range paths {
			if !pool.Submit(worker.Job{Ctx: ctx, Index: i, TableName: tableName, FilePath: path}) {
				return
			}
		}
	}()

	results := make([]LoadResult, len(paths))
	for res := range pool.Results() {
		results[res.Index] = res
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	logger.Info("bulk load finished",
		slog.Int("files", len(paths)),
		slog.Int("failed", failed),
	)
	return results
}
