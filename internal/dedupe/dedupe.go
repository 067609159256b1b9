// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent identical preview computations. Only one simulation runs for a
// given selection key while other callers wait for the result.
package dedupe

import "golang.org/x/sync/singleflight"

// PreviewGroup deduplicates turn previews keyed by keys.SelectionKey.
var PreviewGroup singleflight.Group
