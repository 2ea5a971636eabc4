// Package github implements the remote repository search against the
// GitHub REST API.
//
// # Architecture
//
// The client follows the driven port pattern defined in
// [driven.RepositorySearcher]. It comprises the following components:
//
//   - Client: issues one search request per page via go-github
//   - RateLimiter: spaces requests and records the reported quota
//   - mapping: converts raw search items into [domain.Repository]
//
// # Requests
//
// Each page is a single GET of search/repositories with the creation
// filter as the q parameter ("created:>YYYY-MM-DD") and sort, order,
// per_page and page as query parameters. Requests are unauthenticated.
//
// # Error Handling
//
// Every failure maps onto one of two domain classes:
//
//   - [NetworkError], [APIError] and [RateLimitError] wrap [domain.ErrNetwork]
//   - [ParseError] wraps [domain.ErrParse]: malformed JSON, wrong field
//     types, or an item missing a required field
//
// Nothing is retried. The caller decides what a failure means; the feed
// treats both classes the same and stops paginating.
//
// # Example Usage
//
//	client, _ := github.NewClient(nil, "https://api.github.com/", 1)
//	repos, err := client.Search(ctx, domain.SearchQuery{
//	    CreatedAfter: time.Now().AddDate(0, 0, -10),
//	    Sort:         domain.SortStars,
//	    Order:        domain.SortDescending,
//	    PageSize:     30,
//	    Page:         1,
//	})
package github
