// Package eventsource provides a streaming client for Server-Sent Events
// (SSE). It converts an HTTP response body into a lazy, pull-based sequence
// of events, incrementally and without buffering the whole response.
//
// The package is layered bottom-up:
//
//   - Decoder: assembles events from any io.Reader (line splitting, field
//     dispatch, blank-line event boundaries)
//   - Stream: validates an *http.Response and decodes its body lazily
//   - Client: builds and executes the request, returning a Stream
//   - Subscriber: lifecycle-managed subscription for component-based apps
//
// # Basic Usage
//
//	resp, err := http.Get("https://api.example.com/events")
//	if err != nil {
//	    return err
//	}
//	stream, err := eventsource.Events(resp)
//	if err != nil {
//	    return err // non-200 status or wrong content type
//	}
//	defer stream.Close()
//
//	for {
//	    event, err := stream.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err // transport failure, the stream has ended
//	    }
//	    fmt.Println(event.Type, event.Data)
//	}
//
// # With the Client
//
//	client, _ := eventsource.NewClient(eventsource.Config{
//	    LastEventID: "42",
//	    Headers:     map[string]string{"Authorization": "Bearer token"},
//	})
//	stream, err := client.Connect(ctx, "https://api.example.com/events")
//
// Events are produced only when a blank line dispatches accumulated data;
// unknown fields, comment lines, and unparsable retry values are ignored,
// matching the SSE specification's forward-compatibility intent. The
// library never reconnects; id/retry values are surfaced on each Event for
// callers that implement their own policy.
package eventsource
