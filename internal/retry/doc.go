// Package retry retries HTTP calls to remote collaborators (the GitLab
// compare API and the platform versions endpoint) with exponential backoff.
//
//	classifier := retry.NewHTTPErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fetch(ctx)
//	})
//
// Executor instances are safe for concurrent use. WithOnRetry returns a
// copy, so each caller can attach its own callback.
package retry
