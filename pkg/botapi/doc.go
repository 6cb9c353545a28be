// Package botapi is a typed client for the chatbot backend REST API.
//
// Every call takes a context and performs exactly one request; there are no
// retries. Non-success responses are returned as *APIError carrying the
// backend's "detail" message, which the panel shows to the user verbatim:
//
//	client, err := botapi.New("http://backend:8000",
//		botapi.WithTimeout(10*time.Second),
//		botapi.WithLogger(log),
//	)
//	bots, err := client.ListBots(ctx, botapi.ListOptions{Limit: 50})
//
//	err = client.DeleteBot(ctx, id)
//	var apiErr *botapi.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Println(apiErr.Detail) // "Bot not found"
//	}
//
// CheckSlug has three outcomes: SlugAvailable, SlugTaken, or an error when
// the backend could not be reached or answered with something unreadable.
package botapi
