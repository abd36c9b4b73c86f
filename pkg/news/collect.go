package news

import (
	"context"
	"log/slog"
	"sort"
)

// Collect gathers headlines from every client, skipping sources that fail, and returns the
// newest limit articles with duplicate URLs removed.
func Collect(ctx context.Context, clients []NewsClient, limit int) []Article {
	seen := map[string]struct{}{}
	var all []Article

	for _, client := range clients {
		source := client.Name()

		fetched, err := client.Fetch(ctx, limit)
		if err != nil {
			slog.Warn("error fetching headlines", "source", source, "error", err)
			continue
		}

		var added, duplicated int
		for _, a := range fetched {
			key := a.URL
			if key == "" {
				key = source + ":" + a.ExternalID
			}
			if _, ok := seen[key]; ok {
				duplicated++
				continue
			}
			seen[key] = struct{}{}
			all = append(all, a)
			added++
		}

		slog.Info("headlines fetched", "source", source, "added", added, "duplicated", duplicated)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}
